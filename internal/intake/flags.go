package intake

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/abhisek/pwaquiz/internal/quiz"
)

// RegisterFlags adds one flag per question of key to fs, named after the
// question ID. Multi-select questions get a repeatable string slice flag.
func RegisterFlags(fs *pflag.FlagSet, key *quiz.AnswerKey) {
	for _, q := range key.Questions() {
		name := string(q.ID)
		switch q.Kind {
		case quiz.KindMultiSelect:
			fs.StringSlice(name, nil, fmt.Sprintf("selected option keys for question %d (%s)", q.Num, optionKeys(q)))
		case quiz.KindSingleChoice:
			fs.String(name, "", fmt.Sprintf("selected option key for question %d (%s)", q.Num, optionKeys(q)))
		default:
			fs.String(name, "", fmt.Sprintf("answer text for question %d", q.Num))
		}
	}
}

// FromFlags captures the question flags that were set explicitly on fs.
// Flags left at their defaults are omitted, so the result can be merged over
// answers read from a document. Option keys are trimmed, so
// "--q5 'a, b'" selects "a" and "b"; free text is passed through as typed.
func FromFlags(fs *pflag.FlagSet, key *quiz.AnswerKey) (quiz.SubmittedAnswers, error) {
	answers := quiz.SubmittedAnswers{}
	for _, q := range key.Questions() {
		name := string(q.ID)
		if !fs.Changed(name) {
			continue
		}
		if q.Kind == quiz.KindMultiSelect {
			keys, err := fs.GetStringSlice(name)
			if err != nil {
				return nil, fmt.Errorf("read --%s: %w", name, err)
			}
			answers[q.ID] = quiz.ChoiceAnswer(trimKeys(keys)...)
			continue
		}
		v, err := fs.GetString(name)
		if err != nil {
			return nil, fmt.Errorf("read --%s: %w", name, err)
		}
		if q.Kind == quiz.KindSingleChoice {
			v = strings.TrimSpace(v)
		}
		answers[q.ID] = quiz.TextAnswer(v)
	}
	return answers, nil
}

// trimKeys drops surrounding spaces and empty entries.
func trimKeys(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

func optionKeys(q quiz.Question) string {
	keys := make([]string, 0, len(q.Options))
	for _, o := range q.Options {
		keys = append(keys, o.Key)
	}
	return strings.Join(keys, ", ")
}
