// Package quizform is the answer form: every question of the key on one
// scrollable page, followed by Submit and Reset buttons.
package quizform

import (
	tea "charm.land/bubbletea/v2"
	"github.com/golang/glog"
	"github.com/google/uuid"

	"github.com/abhisek/pwaquiz/internal/logging"
	"github.com/abhisek/pwaquiz/internal/quiz"
	"github.com/abhisek/pwaquiz/internal/router"
	"github.com/abhisek/pwaquiz/internal/screen"
	"github.com/abhisek/pwaquiz/internal/screens/results"
	"github.com/abhisek/pwaquiz/internal/ui/components"
	"github.com/abhisek/pwaquiz/internal/ui/layout"
)

// submitMsg is sent by the Submit button.
type submitMsg struct{}

// resetMsg is sent by the Reset button.
type resetMsg struct{}

// FormScreen collects one answer per question and grades them on submit.
// Focus order is the questions in key order, then Submit, then Reset.
type FormScreen struct {
	grader      *quiz.Grader
	fields      []*field
	submit      components.Button
	reset       components.Button
	focus       int
	newAttempt  func() string
	lastAttempt string
}

var _ screen.Screen = (*FormScreen)(nil)
var _ screen.KeyHintProvider = (*FormScreen)(nil)
var _ screen.ProgressProvider = (*FormScreen)(nil)

// New creates a FormScreen for the grader's answer key.
func New(grader *quiz.Grader) *FormScreen {
	questions := grader.Key().Questions()
	fields := make([]*field, 0, len(questions))
	for _, q := range questions {
		fields = append(fields, newField(q))
	}
	return &FormScreen{
		grader: grader,
		fields: fields,
		submit: components.NewButton("Submit", func() tea.Cmd {
			return func() tea.Msg { return submitMsg{} }
		}),
		reset: components.NewButton("Reset", func() tea.Cmd {
			return func() tea.Msg { return resetMsg{} }
		}),
		newAttempt: uuid.NewString,
	}
}

func (s *FormScreen) Init() tea.Cmd {
	return s.setFocus(0)
}

func (s *FormScreen) Title() string {
	return "Progressive Web Apps Quiz"
}

func (s *FormScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab/Shift+Tab", Description: "Move"},
	}
	switch {
	case s.focus < len(s.fields) && s.fields[s.focus].question.Kind == quiz.KindFillInBlank:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Next"})
	case s.focus < len(s.fields):
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Choose"},
			layout.KeyHint{Key: "Space", Description: "Select"},
		)
	default:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Press"})
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+S", Description: "Submit"},
		layout.KeyHint{Key: "Ctrl+R", Description: "Reset"},
		layout.KeyHint{Key: "Esc", Description: "Home"},
	)
}

// Progress returns how many questions have an answer.
func (s *FormScreen) Progress() (int, int) {
	answered := 0
	for _, f := range s.fields {
		if f.answered() {
			answered++
		}
	}
	return answered, len(s.fields)
}

// Answers returns the form's current input, one entry per question.
func (s *FormScreen) Answers() quiz.SubmittedAnswers {
	answers := make(quiz.SubmittedAnswers, len(s.fields))
	for _, f := range s.fields {
		answers[f.question.ID] = f.answer()
	}
	return answers
}

// LastAttemptID returns the identifier of the most recent submission, or ""
// before the first one.
func (s *FormScreen) LastAttemptID() string {
	return s.lastAttempt
}

func (s *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case submitMsg:
		return s, s.grade()

	case resetMsg, results.RetakeMsg:
		return s, s.Reset()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Cursor blink and other non-key messages go to the focused input.
	if s.focus < len(s.fields) {
		return s, s.fields[s.focus].update(msg)
	}
	return s, nil
}

func (s *FormScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab":
		return s, s.setFocus(s.focus + 1)
	case "shift+tab":
		return s, s.setFocus(s.focus - 1)
	case "ctrl+s":
		return s, s.grade()
	case "ctrl+r":
		return s, s.Reset()
	case "enter":
		if s.focus < len(s.fields) && s.fields[s.focus].question.Kind == quiz.KindFillInBlank {
			return s, s.setFocus(s.focus + 1)
		}
	}

	var cmd tea.Cmd
	switch n := len(s.fields); {
	case s.focus < n:
		cmd = s.fields[s.focus].update(msg)
	case s.focus == n:
		s.submit, cmd = s.submit.Update(msg)
	default:
		s.reset, cmd = s.reset.Update(msg)
	}
	return s, cmd
}

// focusCount is the number of focus stops: every question plus two buttons.
func (s *FormScreen) focusCount() int {
	return len(s.fields) + 2
}

// setFocus moves focus to stop i, wrapping at either end.
func (s *FormScreen) setFocus(i int) tea.Cmd {
	n := s.focusCount()
	i = ((i % n) + n) % n

	for _, f := range s.fields {
		f.blur()
	}
	s.submit.Focused = false
	s.reset.Focused = false

	s.focus = i
	glog.V(2).Infof("form focus %d/%d", i, n)
	switch {
	case i < len(s.fields):
		return s.fields[i].focus()
	case i == len(s.fields):
		s.submit.Focused = true
	default:
		s.reset.Focused = true
	}
	return nil
}

// Reset clears every answer and returns focus to the first question.
func (s *FormScreen) Reset() tea.Cmd {
	glog.V(1).Info("form reset")
	for _, f := range s.fields {
		f.reset()
	}
	return s.setFocus(0)
}

// grade scores the current answers, logs the attempt and opens the results.
func (s *FormScreen) grade() tea.Cmd {
	result := s.grader.Grade(s.Answers())
	s.lastAttempt = s.newAttempt()
	logging.Attempt("tui", s.lastAttempt, result)

	rs := results.New(s.lastAttempt, result)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: rs}
	}
}
