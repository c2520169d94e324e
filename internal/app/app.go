package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/golang/glog"

	"github.com/abhisek/pwaquiz/internal/quiz"
	"github.com/abhisek/pwaquiz/internal/router"
	"github.com/abhisek/pwaquiz/internal/screen"
	"github.com/abhisek/pwaquiz/internal/screens/home"
	"github.com/abhisek/pwaquiz/internal/screens/welcome"
	"github.com/abhisek/pwaquiz/internal/ui/layout"
)

// Options configures the interactive program.
type Options struct {
	// Grader scores submissions. Defaults to the built-in PWA quiz.
	Grader *quiz.Grader

	// AltScreen renders in the terminal's alternate screen buffer.
	AltScreen bool

	// Splash shows the welcome screen before the menu.
	Splash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router    *router.Router
	altScreen bool
	width     int
	height    int
}

// newAppModel creates a new AppModel starting at the splash or home screen.
func newAppModel(opts Options) AppModel {
	grader := opts.Grader
	if grader == nil {
		grader = quiz.NewGrader(quiz.DefaultKey())
	}

	var initial screen.Screen = home.New(grader)
	if opts.Splash {
		initial = welcome.New(func() screen.Screen { return home.New(grader) })
	}
	return AppModel{
		router:    router.New(initial),
		altScreen: opts.AltScreen,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = m.altScreen

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render composes the frame for the current window size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	var progress layout.HeaderProgress
	if active != nil {
		title = active.Title()
		if pp, ok := active.(screen.ProgressProvider); ok {
			progress.Answered, progress.Total = pp.Progress()
		}
	}

	header := layout.RenderHeader(title, progress, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if khp, ok := active.(screen.KeyHintProvider); ok {
		if hints := khp.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	glog.V(1).Infof("starting interactive quiz (alt screen %t)", opts.AltScreen)
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run interactive quiz: %w", err)
	}
	return nil
}
