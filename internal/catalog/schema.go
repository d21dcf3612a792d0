package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// contentSchema describes the embedded content document. Exercise answer
// shape by type (single string vs positional list) is enforced in Go after
// decoding; the schema covers structure and required fields.
var contentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"languages": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":   map[string]any{"type": "string", "minLength": 1},
					"name": map[string]any{"type": "string", "minLength": 1},
					"flag": map[string]any{"type": "string"},
				},
				"required":             []any{"id", "name"},
				"additionalProperties": false,
			},
		},
		"lessons": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":          map[string]any{"type": "string", "minLength": 1},
						"title":       map[string]any{"type": "string", "minLength": 1},
						"description": map[string]any{"type": "string"},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"beginner", "intermediate", "advanced"},
						},
						"xpReward": map[string]any{"type": "integer", "minimum": 0},
						"funFact":  map[string]any{"type": "string"},
						"exercises": map[string]any{
							"type":     "array",
							"minItems": 1,
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"id": map[string]any{"type": "string", "minLength": 1},
									"type": map[string]any{
										"type": "string",
										"enum": []any{"multiple-choice", "fill-blank", "drag-drop", "story-mode"},
									},
									"prompt":      map[string]any{"type": "string", "minLength": 1},
									"options":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
									"answer":      map[string]any{"type": "string"},
									"answerSeq":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
									"explanation": map[string]any{"type": "string"},
									"xpValue":     map[string]any{"type": "integer", "minimum": 0},
								},
								"required":             []any{"id", "type", "prompt", "xpValue"},
								"additionalProperties": false,
							},
						},
					},
					"required":             []any{"id", "title", "difficulty", "xpReward", "exercises"},
					"additionalProperties": false,
				},
			},
		},
	},
	"required":             []any{"languages", "lessons"},
	"additionalProperties": false,
}

// validateContent validates raw content JSON against contentSchema.
func validateContent(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compile content schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// compileSchema compiles contentSchema. The jsonschema library expects a
// parsed JSON value, so the definition round-trips through encoding/json.
func compileSchema() (*jsonschema.Schema, error) {
	defBytes, err := json.Marshal(contentSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://content.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	return c.Compile(schemaURL)
}
