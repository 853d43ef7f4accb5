package library

import (
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// documentSchema checks the coarse shape of a quiz document before parsing:
// either a sequence of question mappings, or a mapping with an optional
// instructions string and a questions sequence. Field-level checks are left
// to the parser, which reports the precise error taxonomy.
var documentSchema = map[string]any{
	"oneOf": []any{
		map[string]any{"$ref": "#/$defs/questionList"},
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"instructions": map[string]any{"type": "string"},
				"questions":    map[string]any{"$ref": "#/$defs/questionList"},
			},
			"required":             []any{"questions"},
			"additionalProperties": false,
		},
	},
	"$defs": map[string]any{
		"questionList": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "object"},
		},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateDocument checks doc against documentSchema.
func validateDocument(doc any) error {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://quiz-document.json", documentSchema); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://quiz-document.json")
	})
	if compileErr != nil {
		return compileErr
	}

	if err := compiledSchema.Validate(doc); err != nil {
		return fmt.Errorf("not a quiz document: %w", err)
	}
	return nil
}
