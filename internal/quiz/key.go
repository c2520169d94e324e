package quiz

// AnswerKey is the fixed table of questions, correct answers and point
// values. It is built once at startup and never mutated; accessors hand out
// copies.
type AnswerKey struct {
	questions []Question
	byID      map[QuestionID]int
	maxScore  int
}

// NewAnswerKey builds an AnswerKey from questions, in the given order.
// Question slices are copied so later changes by the caller are not seen.
func NewAnswerKey(questions []Question) *AnswerKey {
	k := &AnswerKey{
		questions: make([]Question, len(questions)),
		byID:      make(map[QuestionID]int, len(questions)),
	}
	for i, q := range questions {
		k.questions[i] = cloneQuestion(q)
		k.byID[q.ID] = i
		k.maxScore += q.Points
	}
	return k
}

// Questions returns the questions in grading order.
func (k *AnswerKey) Questions() []Question {
	out := make([]Question, len(k.questions))
	for i, q := range k.questions {
		out[i] = cloneQuestion(q)
	}
	return out
}

// Question returns the question with the given ID.
func (k *AnswerKey) Question(id QuestionID) (Question, bool) {
	i, ok := k.byID[id]
	if !ok {
		return Question{}, false
	}
	return cloneQuestion(k.questions[i]), true
}

// Len returns the number of questions.
func (k *AnswerKey) Len() int {
	return len(k.questions)
}

// MaxScore returns the sum of all question point values.
func (k *AnswerKey) MaxScore() int {
	return k.maxScore
}

func cloneQuestion(q Question) Question {
	q.Options = append([]Option(nil), q.Options...)
	q.Accepted = append([]string(nil), q.Accepted...)
	return q
}

// DefaultKey returns the Progressive Web App quiz.
func DefaultKey() *AnswerKey {
	return NewAnswerKey([]Question{
		{
			ID:   Q1,
			Num:  1,
			Kind: KindFillInBlank,
			Prompt: "Fill in the blank: A ______ is a script that the browser runs in the background, " +
				"separate from the web page, enabling offline support and push notifications.",
			Points:      5,
			Accepted:    []string{"service worker", "serviceworker", "service-worker"},
			Description: "service worker",
		},
		{
			ID:     Q2,
			Num:    2,
			Kind:   KindSingleChoice,
			Prompt: "Which protocol must a Progressive Web App be served over?",
			Options: []Option{
				{Key: "a", Label: "HTTP"},
				{Key: "b", Label: "HTTPS"},
				{Key: "c", Label: "FTP"},
				{Key: "d", Label: "WebSocket"},
			},
			Points:      5,
			Accepted:    []string{"b"},
			Description: "HTTPS (Hypertext Transfer Protocol Secure)",
		},
		{
			ID:     Q3,
			Num:    3,
			Kind:   KindSingleChoice,
			Prompt: "What is the purpose of the web app manifest file?",
			Options: []Option{
				{Key: "a", Label: "To cache assets for offline use"},
				{Key: "b", Label: "To register the service worker"},
				{Key: "c", Label: "To provide metadata about the app and control how it appears when installed"},
				{Key: "d", Label: "To declare the app's server routes"},
			},
			Points:      5,
			Accepted:    []string{"c"},
			Description: "To provide metadata about the app and control how it appears when installed",
		},
		{
			ID:     Q4,
			Num:    4,
			Kind:   KindSingleChoice,
			Prompt: "Which caching strategy tries the network first and falls back to the cache when offline?",
			Options: []Option{
				{Key: "a", Label: "Cache First"},
				{Key: "b", Label: "Network First"},
				{Key: "c", Label: "Stale While Revalidate"},
				{Key: "d", Label: "Cache Only"},
			},
			Points:      5,
			Accepted:    []string{"b"},
			Description: "Network First",
		},
		{
			ID:     Q5,
			Num:    5,
			Kind:   KindMultiSelect,
			Prompt: "Which of the following are core characteristics of a Progressive Web App? (Select all that apply)",
			Options: []Option{
				{Key: "progressive", Label: "Progressive"},
				{Key: "responsive", Label: "Responsive"},
				{Key: "offline", Label: "Connectivity Independent (Offline)"},
				{Key: "installable", Label: "Installable"},
			},
			Points:      10,
			Accepted:    []string{"progressive", "responsive", "offline", "installable"},
			Description: "Progressive, Responsive, Connectivity Independent (Offline), Installable",
		},
	})
}
