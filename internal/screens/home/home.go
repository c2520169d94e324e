package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pwaquiz/internal/quiz"
	"github.com/abhisek/pwaquiz/internal/router"
	"github.com/abhisek/pwaquiz/internal/screen"
	"github.com/abhisek/pwaquiz/internal/screens/quizform"
	"github.com/abhisek/pwaquiz/internal/ui/components"
	"github.com/abhisek/pwaquiz/internal/ui/layout"
	"github.com/abhisek/pwaquiz/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
	key        *quiz.AnswerKey
	form       *quizform.FormScreen
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. The answer form is created once so that
// answers survive a trip back to the menu.
func New(grader *quiz.Grader) *HomeScreen {
	h := &HomeScreen{
		key:        grader.Key(),
		form:       quizform.New(grader),
		menuLabels: []string{"START QUIZ", "EXIT"},
	}

	items := []components.MenuItem{
		{Label: h.menuLabels[0], Description: "Answer the questions and submit for a score", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: h.form}
			}
		}},
		{Label: h.menuLabels[1], Description: "Leave the quiz", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight) ||
		layout.IsCompactWidth(width)

	cw := contentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderInfoBar(h.key, cw, compact),
		renderMenu(h.menuLabels, h.menu.Selected, cw, compact),
	}
	if d := h.menu.Items[h.menu.Selected].Description; d != "" && !compact {
		sections = append(sections, theme.Hint.Render(d))
	}

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
