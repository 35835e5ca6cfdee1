package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://probpick-catalog.json"

// schemaDefinition describes the catalog document. Declared skill names and
// ability levels are left untyped here; skill.Parse and skill.ParseLevel
// decide what they accept.
var schemaDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"threshold": map[string]any{
			"type":    "number",
			"minimum": 0,
			"maximum": 1,
		},
		"skills": map[string]any{
			"type":  "array",
			"items": map[string]any{},
		},
		"problems": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"handle": map[string]any{"type": "string"},
					"skills": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
				"required":             []any{"handle", "skills"},
				"additionalProperties": false,
			},
		},
		"students": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name": map[string]any{"type": "string", "minLength": 1},
					"abilities": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"skill": map[string]any{"type": "string"},
								"level": map[string]any{},
							},
							"required":             []any{"skill", "level"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"name", "abilities"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"version", "skills", "problems"},
	"additionalProperties": false,
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compiledSchema compiles the catalog schema once per process.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not Go maps
		// with arbitrary numeric types, so round-trip through JSON.
		defBytes, err := json.Marshal(schemaDefinition)
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
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validateDocument checks a decoded JSON document against the catalog schema.
func validateDocument(doc any) error {
	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
