// Package quiz holds the answer key and the grading rules of the quiz.
//
// Grading is total: every input, including missing, empty or nonsensical
// answers, produces a QuizResult. An incorrect answer is a graded outcome,
// never an error.
package quiz

import "strings"

// Grader grades attempts against a fixed AnswerKey. It holds no other state,
// so one Grader can be shared freely.
type Grader struct {
	key *AnswerKey
}

// NewGrader returns a Grader for key.
func NewGrader(key *AnswerKey) *Grader {
	return &Grader{key: key}
}

// Key returns the answer key the grader uses.
func (g *Grader) Key() *AnswerKey {
	return g.key
}

// Grade grades every question of the key in order and aggregates the score.
func (g *Grader) Grade(answers SubmittedAnswers) QuizResult {
	res := QuizResult{
		MaxScore:  g.key.MaxScore(),
		Questions: make([]QuestionResult, 0, len(g.key.questions)),
	}
	for _, q := range g.key.questions {
		qr := gradeQuestion(q, answers[q.ID])
		res.TotalScore += qr.Score
		res.Questions = append(res.Questions, qr)
	}
	res.Passed = res.TotalScore >= PassingScore
	return res
}

func gradeQuestion(q Question, a Answer) QuestionResult {
	switch q.Kind {
	case KindFillInBlank:
		return FillInBlank(q, a.Text)
	case KindSingleChoice:
		return SingleChoice(q, a.Text)
	case KindMultiSelect:
		return MultiSelect(q, a.Choices)
	default:
		return newResult(q, false, displayText(a.Text))
	}
}

// FillInBlank grades a free-text answer. The answer is trimmed and
// lower-cased, then compared exactly against each accepted variant.
func FillInBlank(q Question, answer string) QuestionResult {
	normalized := normalizeText(answer)
	correct := false
	if normalized != "" {
		for _, v := range q.Accepted {
			if normalized == normalizeText(v) {
				correct = true
				break
			}
		}
	}
	return newResult(q, correct, displayText(normalized))
}

// SingleChoice grades one selected option key. The key must equal the
// correct key exactly; no selection is incorrect.
func SingleChoice(q Question, answer string) QuestionResult {
	correct := answer != "" && len(q.Accepted) > 0 && answer == q.Accepted[0]
	return newResult(q, correct, displayText(answer))
}

// MultiSelect grades a set of selected option keys. The selection is
// correct only when it has exactly the members of the correct set; a subset
// or a superset scores zero. Repeated keys count once.
func MultiSelect(q Question, answers []string) QuestionResult {
	correct := len(answers) > 0 && setEqual(toSet(answers), toSet(q.Accepted))
	return newResult(q, correct, displayText(strings.Join(answers, ", ")))
}

func newResult(q Question, correct bool, userAnswer string) QuestionResult {
	qr := QuestionResult{
		QuestionNum:   q.Num,
		Correct:       correct,
		MaxScore:      q.Points,
		UserAnswer:    userAnswer,
		CorrectAnswer: q.Description,
	}
	if correct {
		qr.Score = q.Points
	}
	return qr
}
