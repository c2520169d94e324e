package intake

import "fmt"

// ErrInvalidAnswers indicates an answers document that could not be read,
// is not JSON, or does not match AnswersSchema. The grader is never invoked
// for such a document.
type ErrInvalidAnswers struct {
	Source string
	Err    error
}

func (e *ErrInvalidAnswers) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("invalid answers: %v", e.Err)
	}
	return fmt.Sprintf("invalid answers in %s: %v", e.Source, e.Err)
}

func (e *ErrInvalidAnswers) Unwrap() error { return e.Err }
