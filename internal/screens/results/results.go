// Package results shows a graded attempt: the pass/fail banner, the score
// and the per-question breakdown.
package results

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pwaquiz/internal/quiz"
	"github.com/abhisek/pwaquiz/internal/report"
	"github.com/abhisek/pwaquiz/internal/router"
	"github.com/abhisek/pwaquiz/internal/screen"
	"github.com/abhisek/pwaquiz/internal/ui/components"
	"github.com/abhisek/pwaquiz/internal/ui/layout"
	"github.com/abhisek/pwaquiz/internal/ui/theme"
)

// RetakeMsg is sent to the form beneath the results screen after it pops,
// asking it to clear every answer.
type RetakeMsg struct{}

// ResultsScreen displays one graded attempt.
type ResultsScreen struct {
	attemptID string
	result    quiz.QuizResult
	lines     []string
	offset    int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a new ResultsScreen.
func New(attemptID string, result quiz.QuizResult) *ResultsScreen {
	return &ResultsScreen{
		attemptID: attemptID,
		result:    result,
		lines:     report.StyledLines(result),
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

// Result returns the attempt being shown.
func (s *ResultsScreen) Result() quiz.QuizResult {
	return s.result
}

// AttemptID returns the identifier the attempt was logged under.
func (s *ResultsScreen) AttemptID() string {
	return s.attemptID
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "r", Description: "Retake"},
		{Key: "Enter", Description: "Back to answers"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		s.scroll(-1)
	case "down", "j":
		s.scroll(1)
	case "pgup":
		s.scroll(-10)
	case "pgdown":
		s.scroll(10)
	case "home", "g":
		s.offset = 0
	case "r":
		return s, tea.Sequence(
			func() tea.Msg { return router.PopScreenMsg{} },
			func() tea.Msg { return RetakeMsg{} },
		)
	case "enter", "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *ResultsScreen) scroll(delta int) {
	s.offset += delta
	if s.offset > len(s.lines)-1 {
		s.offset = len(s.lines) - 1
	}
	if s.offset < 0 {
		s.offset = 0
	}
}

func (s *ResultsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Quiz complete!"))
	b.WriteString("\n\n")

	barWidth := min(width-8, 60)
	bar := components.NewProgressBar("Score", s.result.TotalScore, s.result.MaxScore, barWidth)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	avail := height - 4
	if avail < 1 {
		avail = 1
	}
	start := s.offset
	if maxStart := len(s.lines) - avail; start > maxStart {
		start = max(maxStart, 0)
	}
	end := min(start+avail, len(s.lines))

	body := lipgloss.NewStyle().
		Width(min(width-4, 72)).
		Render(strings.Join(s.lines[start:end], "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body))

	return b.String()
}
