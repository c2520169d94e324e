package quizform

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pwaquiz/internal/quiz"
	"github.com/abhisek/pwaquiz/internal/ui/components"
)

// field holds the input widget for one question. Exactly one of text,
// choice and check is in use, chosen by the question kind.
type field struct {
	question quiz.Question
	text     components.TextInput
	choice   components.ChoiceList
	check    components.CheckList
}

func newField(q quiz.Question) *field {
	f := &field{question: q}
	choices := make([]components.Choice, 0, len(q.Options))
	for _, o := range q.Options {
		choices = append(choices, components.Choice{Key: o.Key, Label: o.Label})
	}

	switch q.Kind {
	case quiz.KindFillInBlank:
		f.text = components.NewTextInput("Type your answer...", 60)
	case quiz.KindSingleChoice:
		f.choice = components.NewChoiceList(choices)
	case quiz.KindMultiSelect:
		f.check = components.NewCheckList(choices)
	}
	return f
}

func (f *field) focus() tea.Cmd {
	switch f.question.Kind {
	case quiz.KindFillInBlank:
		return f.text.Focus()
	case quiz.KindSingleChoice:
		f.choice.Focused = true
	case quiz.KindMultiSelect:
		f.check.Focused = true
	}
	return nil
}

func (f *field) blur() {
	switch f.question.Kind {
	case quiz.KindFillInBlank:
		f.text.Blur()
	case quiz.KindSingleChoice:
		f.choice.Focused = false
	case quiz.KindMultiSelect:
		f.check.Focused = false
	}
}

func (f *field) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.question.Kind {
	case quiz.KindFillInBlank:
		f.text, cmd = f.text.Update(msg)
	case quiz.KindSingleChoice:
		f.choice, cmd = f.choice.Update(msg)
	case quiz.KindMultiSelect:
		f.check, cmd = f.check.Update(msg)
	}
	return cmd
}

// answer returns the current input as a submitted answer.
func (f *field) answer() quiz.Answer {
	switch f.question.Kind {
	case quiz.KindFillInBlank:
		return quiz.TextAnswer(f.text.Value())
	case quiz.KindSingleChoice:
		return quiz.TextAnswer(f.choice.Value())
	case quiz.KindMultiSelect:
		return quiz.ChoiceAnswer(f.check.Values()...)
	}
	return quiz.Answer{}
}

// answered reports whether the user has given any input.
func (f *field) answered() bool {
	a := f.answer()
	return strings.TrimSpace(a.Text) != "" || len(a.Choices) > 0
}

func (f *field) reset() {
	switch f.question.Kind {
	case quiz.KindFillInBlank:
		f.text.Reset()
	case quiz.KindSingleChoice:
		f.choice.Reset()
	case quiz.KindMultiSelect:
		f.check.Reset()
	}
}

func (f *field) view() string {
	switch f.question.Kind {
	case quiz.KindFillInBlank:
		return f.text.View()
	case quiz.KindSingleChoice:
		return f.choice.View()
	case quiz.KindMultiSelect:
		return f.check.View()
	}
	return ""
}
