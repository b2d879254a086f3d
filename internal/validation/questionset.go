package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const questionSchemaURL = "schema://exam-question-set.json"

// questionSetSchema accepts one exam question or an array of them.
var questionSetSchema = map[string]any{
	"$defs": map[string]any{
		"question": map[string]any{
			"type":     "object",
			"required": []any{"question", "type", "correct_answer"},
			"properties": map[string]any{
				"question":       map[string]any{"type": "string", "minLength": 1},
				"type":           map[string]any{"enum": []any{"multiple_choice", "short_answer", "open_ended"}},
				"correct_answer": map[string]any{"type": "string"},
				"options": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 4,
					"maxItems": 4,
				},
			},
			"if": map[string]any{
				"properties": map[string]any{"type": map[string]any{"const": "multiple_choice"}},
			},
			"then": map[string]any{"required": []any{"options"}},
		},
	},
	"oneOf": []any{
		map[string]any{"$ref": "#/$defs/question"},
		map[string]any{"type": "array", "items": map[string]any{"$ref": "#/$defs/question"}},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func questionSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants values shaped like decoded JSON, so round-trip the
		// Go literal through encoding/json first.
		defBytes, err := json.Marshal(questionSetSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader(defBytes))
		if err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(questionSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(questionSchemaURL)
	})
	return compiledSchema, compileErr
}

// CheckQuestionSet reports whether raw looks like an exam question or a list
// of them. It never modifies the payload; callers decide what to do with a
// non-conforming one.
func CheckQuestionSet(raw json.RawMessage) error {
	schema, err := questionSchema()
	if err != nil {
		return fmt.Errorf("compile question schema: %w", err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("question set does not match schema: %w", err)
	}
	return nil
}
