package quiz

import "math"

// QuestionID identifies a question in the answer key, e.g. "q1".
type QuestionID string

const (
	Q1 QuestionID = "q1"
	Q2 QuestionID = "q2"
	Q3 QuestionID = "q3"
	Q4 QuestionID = "q4"
	Q5 QuestionID = "q5"
)

// Kind describes how a question is answered and therefore how it is graded.
type Kind string

const (
	// KindFillInBlank is a free-text answer matched against accepted variants.
	KindFillInBlank Kind = "fill_in_blank"

	// KindSingleChoice is one selected option key matched against one key.
	KindSingleChoice Kind = "single_choice"

	// KindMultiSelect is a set of option keys that must equal the correct set.
	KindMultiSelect Kind = "multi_select"
)

const (
	// MaxScore is the number of points available across the whole quiz.
	MaxScore = 30

	// PassingScore is the lowest total that passes (70% of MaxScore).
	PassingScore = 21

	// NoAnswer is shown in place of an empty or missing answer.
	NoAnswer = "(no answer)"
)

// Option is one selectable choice of a choice question.
type Option struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Question is one entry of the answer key together with the display data the
// form needs to ask it.
type Question struct {
	ID     QuestionID `json:"id"`
	Num    int        `json:"num"`
	Kind   Kind       `json:"kind"`
	Prompt string     `json:"prompt"`

	// Options is empty for fill-in-blank questions.
	Options []Option `json:"options,omitempty"`

	// Points is awarded in full for a correct answer, otherwise zero.
	Points int `json:"-"`

	// Accepted holds the accepted literals (fill-in-blank), the single
	// correct key (single choice) or the correct key set (multi-select).
	Accepted []string `json:"-"`

	// Description is the human-readable correct answer shown in feedback.
	// It is display-only and never used for grading.
	Description string `json:"-"`
}

// Answer is the raw input captured for one question.
type Answer struct {
	// Text is the typed answer or the selected option key.
	Text string

	// Choices holds the selected option keys of a multi-select question,
	// in the order they were captured.
	Choices []string
}

// TextAnswer returns an Answer for a free-text or single-choice question.
func TextAnswer(s string) Answer {
	return Answer{Text: s}
}

// ChoiceAnswer returns an Answer for a multi-select question.
func ChoiceAnswer(keys ...string) Answer {
	return Answer{Choices: keys}
}

// SubmittedAnswers maps each question to the respondent's raw input.
// Missing entries are graded as unanswered.
type SubmittedAnswers map[QuestionID]Answer

// QuestionResult is the graded outcome of one question.
type QuestionResult struct {
	QuestionNum   int    `json:"question_num"`
	Correct       bool   `json:"correct"`
	Score         int    `json:"score"`
	MaxScore      int    `json:"max_score"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
}

// QuizResult is the graded outcome of a whole attempt.
type QuizResult struct {
	TotalScore int              `json:"total_score"`
	MaxScore   int              `json:"max_score"`
	Questions  []QuestionResult `json:"questions"`
	Passed     bool             `json:"passed"`
}

// Percentage returns the total score as a whole percentage of the maximum,
// rounded half away from zero.
func (r QuizResult) Percentage() int {
	if r.MaxScore <= 0 {
		return 0
	}
	return int(math.Round(float64(r.TotalScore) / float64(r.MaxScore) * 100))
}

// CorrectCount returns how many questions were answered correctly.
func (r QuizResult) CorrectCount() int {
	n := 0
	for _, q := range r.Questions {
		if q.Correct {
			n++
		}
	}
	return n
}
