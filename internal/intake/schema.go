package intake

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const answersSchemaURL = "schema://pwaquiz-answers.json"

// AnswersSchema describes a JSON answers document. Every question is
// optional; an absent or null value is graded as unanswered.
var AnswersSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"q1": nullableString("Free-text answer to question 1"),
		"q2": nullableString("Selected option key for question 2"),
		"q3": nullableString("Selected option key for question 3"),
		"q4": nullableString("Selected option key for question 4"),
		"q5": map[string]any{
			"type":        []any{"array", "null"},
			"items":       map[string]any{"type": "string"},
			"description": "Selected option keys for question 5",
		},
	},
	"additionalProperties": false,
}

func nullableString(desc string) map[string]any {
	return map[string]any{
		"type":        []any{"string", "null"},
		"description": desc,
	}
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// answersSchema compiles AnswersSchema on first use.
func answersSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a decoded JSON value, not Go maps with typed
		// slices, so round-trip the definition.
		defBytes, err := json.Marshal(AnswersSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(answersSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(answersSchemaURL)
	})
	return compiled, compileErr
}
