// Package intake captures raw answers from outside the terminal form and
// turns them into quiz.SubmittedAnswers. It knows nothing about grading.
package intake

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/abhisek/pwaquiz/internal/quiz"
)

// StdinPath names standard input as the answers source.
const StdinPath = "-"

// Parse validates raw against AnswersSchema and decodes it using the kinds
// of the questions in key. Multi-select questions take an array of keys,
// every other question takes a string. Null or absent values are left out.
func Parse(key *quiz.AnswerKey, source string, raw []byte) (quiz.SubmittedAnswers, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ErrInvalidAnswers{Source: source, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := answersSchema()
	if err != nil {
		return nil, fmt.Errorf("compile answers schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &ErrInvalidAnswers{Source: source, Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, &ErrInvalidAnswers{Source: source, Err: err}
	}

	answers := make(quiz.SubmittedAnswers, len(fields))
	for _, q := range key.Questions() {
		v, ok := fields[string(q.ID)]
		if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			continue
		}
		a, err := decodeAnswer(q.Kind, v)
		if err != nil {
			return nil, &ErrInvalidAnswers{Source: source, Err: fmt.Errorf("%s: %w", q.ID, err)}
		}
		answers[q.ID] = a
	}
	return answers, nil
}

func decodeAnswer(kind quiz.Kind, v json.RawMessage) (quiz.Answer, error) {
	if kind == quiz.KindMultiSelect {
		var keys []string
		if err := json.Unmarshal(v, &keys); err != nil {
			return quiz.Answer{}, err
		}
		return quiz.ChoiceAnswer(keys...), nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return quiz.Answer{}, err
	}
	return quiz.TextAnswer(s), nil
}

// Read reads an answers document from r and parses it.
func Read(key *quiz.AnswerKey, source string, r io.Reader) (quiz.SubmittedAnswers, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, &ErrInvalidAnswers{Source: source, Err: err}
	}
	return Parse(key, source, raw)
}

// ReadFile reads the answers document at path, or from stdin when path is
// StdinPath.
func ReadFile(key *quiz.AnswerKey, path string, stdin io.Reader) (quiz.SubmittedAnswers, error) {
	if path == StdinPath {
		if stdin == nil {
			return nil, &ErrInvalidAnswers{Source: "stdin", Err: errors.New("no standard input")}
		}
		return Read(key, "stdin", stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &ErrInvalidAnswers{Source: path, Err: err}
	}
	defer func() { _ = f.Close() }()
	return Read(key, path, f)
}

// Merge returns base with every entry of override applied on top. Neither
// input is modified.
func Merge(base, override quiz.SubmittedAnswers) quiz.SubmittedAnswers {
	out := make(quiz.SubmittedAnswers, len(base)+len(override))
	for id, a := range base {
		out[id] = a
	}
	for id, a := range override {
		out[id] = a
	}
	return out
}
