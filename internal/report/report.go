// Package report renders a graded attempt for people and for machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pwaquiz/internal/quiz"
	"github.com/abhisek/pwaquiz/internal/ui/theme"
)

const (
	passText = "PASS"
	failText = "FAIL"

	passMessage = "Congratulations! You passed the quiz!"
	failMessage = "Keep studying and try again!"

	correctStatus   = "✓ Correct"
	incorrectStatus = "✗ Incorrect"

	detailHeading = "Detailed Results"
)

// Banner returns "PASS" or "FAIL".
func Banner(r quiz.QuizResult) string {
	if r.Passed {
		return passText
	}
	return failText
}

// ScoreLine returns "Your Score: X / M (P%)".
func ScoreLine(r quiz.QuizResult) string {
	return fmt.Sprintf("Your Score: %d / %d (%d%%)", r.TotalScore, r.MaxScore, r.Percentage())
}

// Message returns the encouragement shown under the score.
func Message(r quiz.QuizResult) string {
	if r.Passed {
		return passMessage
	}
	return failMessage
}

// Status returns the correct/incorrect marker of one question.
func Status(q quiz.QuestionResult) string {
	if q.Correct {
		return correctStatus
	}
	return incorrectStatus
}

// QuestionHeading returns "Question N: S / M points".
func QuestionHeading(q quiz.QuestionResult) string {
	return fmt.Sprintf("Question %d: %d / %d points", q.QuestionNum, q.Score, q.MaxScore)
}

// Lines returns the plain-text report, one entry per line.
func Lines(r quiz.QuizResult) []string {
	return render(r, plain)
}

// StyledLines returns the report with theme colours applied.
func StyledLines(r quiz.QuizResult) []string {
	return render(r, styled)
}

// Render writes the report to w, styled when color is true.
func Render(w io.Writer, r quiz.QuizResult, color bool) error {
	lines := Lines(r)
	if color {
		lines = StyledLines(r)
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

// Document is the JSON form of a graded attempt.
type Document struct {
	AttemptID string `json:"attempt_id,omitempty"`
	quiz.QuizResult
	Percentage int `json:"percentage"`
}

// NewDocument wraps r for JSON output.
func NewDocument(attemptID string, r quiz.QuizResult) Document {
	return Document{
		AttemptID:  attemptID,
		QuizResult: r,
		Percentage: r.Percentage(),
	}
}

// JSON writes the attempt as an indented JSON document.
func JSON(w io.Writer, attemptID string, r quiz.QuizResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(attemptID, r)); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

type styler struct {
	banner  func(passed bool, s string) string
	status  func(correct bool, s string) string
	heading func(s string) string
	label   func(s string) string
	dim     func(s string) string
}

var plain = styler{
	banner:  func(_ bool, s string) string { return s },
	status:  func(_ bool, s string) string { return s },
	heading: func(s string) string { return s },
	label:   func(s string) string { return s },
	dim:     func(s string) string { return s },
}

var styled = styler{
	banner: func(passed bool, s string) string {
		if passed {
			return theme.PassBanner.Render(s)
		}
		return theme.FailBanner.Render(s)
	},
	status: func(correct bool, s string) string {
		if correct {
			return theme.Correct.Render(s)
		}
		return theme.Incorrect.Render(s)
	},
	heading: func(s string) string { return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(s) },
	label:   func(s string) string { return lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(s) },
	dim:     func(s string) string { return theme.Hint.Render(s) },
}

func render(r quiz.QuizResult, st styler) []string {
	lines := []string{
		st.banner(r.Passed, Banner(r)),
		ScoreLine(r),
		st.dim(Message(r)),
		"",
		st.heading(detailHeading),
	}
	for _, q := range r.Questions {
		lines = append(lines,
			"",
			QuestionHeading(q)+"  "+st.status(q.Correct, Status(q)),
			"  "+st.label("Your answer:")+" "+q.UserAnswer,
			"  "+st.label("Correct answer:")+" "+st.status(true, q.CorrectAnswer),
		)
	}
	return lines
}
