// Package welcome is the splash screen shown before the main menu.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pwaquiz/internal/router"
	"github.com/abhisek/pwaquiz/internal/screen"
	"github.com/abhisek/pwaquiz/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 400 * time.Millisecond
	totalDur     = 2000 * time.Millisecond
)

const deviceArt = `╭─────────╮
│ ▂▂▂▂▂▂▂ │
│ ▌ PWA ▐ │
│ ▔▔▔▔▔▔▔ │
│    ◯    │
╰─────────╯`

// signal frames pulse beside the device while the splash plays
var signalFrames = []string{"◌", "◎", "◉"}

type tickMsg time.Time

// WelcomeScreen shows a short splash and then replaces itself with the
// screen produced by next. Any key skips the wait.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by next.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		w.elapsed += tickInterval
		w.tickCount++
		if w.elapsed >= totalDur {
			return w, w.transition()
		}
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	device := lipgloss.NewStyle().Foreground(theme.Primary).Render(deviceArt)

	if w.elapsed >= phase1End {
		signal := lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render(signalFrames[w.tickCount%len(signalFrames)])
		lines := strings.Split(device, "\n")
		for i := range lines {
			pad := "   "
			if i == 2 {
				pad = " " + signal + " "
			}
			lines[i] = pad + lines[i] + pad
		}
		device = strings.Join(lines, "\n")
	}

	sections := []string{device}

	if w.elapsed >= phase1End {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().
				Foreground(theme.Text).
				Bold(true).
				Render("How well do you know Progressive Web Apps?"),
			"",
			lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Italic(true).
				Render("press any key to continue"),
		)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
