package curriculum

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// curriculumSchema is the JSON Schema every curriculum file must conform to.
var curriculumSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"lessons": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"title": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"content": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"question": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"prompt": map[string]any{
								"type":      "string",
								"minLength": 1,
							},
							"mode": map[string]any{
								"type": "string",
								"enum": []any{"choice", "freetext"},
							},
							"options": map[string]any{
								"type":  "array",
								"items": map[string]any{"type": "string"},
							},
							"answer": map[string]any{
								"type":      "string",
								"minLength": 1,
							},
						},
						"required":             []any{"prompt", "mode", "answer"},
						"additionalProperties": false,
					},
				},
				"required":             []any{"id", "title", "content", "question"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"lessons"},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateDocument checks raw curriculum JSON against the schema.
func validateDocument(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := getCompiledSchema()
	if err != nil {
		return fmt.Errorf("compile curriculum schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("curriculum schema validation failed: %w", err)
	}
	return nil
}

// getCompiledSchema compiles the curriculum schema once and caches it.
func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not
		// raw bytes. Marshal then unmarshal to get a clean representation.
		defBytes, err := json.Marshal(curriculumSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://curriculum.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
