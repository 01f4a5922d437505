package exercise

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var stringList = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items":    map[string]any{"type": "string"},
}

// payloadSchemas holds the JSON Schema of the data object for each kind.
var payloadSchemas = map[Kind]map[string]any{
	KindDragDrop: {
		"type": "object",
		"properties": map[string]any{
			"items":   stringList,
			"targets": stringList,
		},
		"required": []string{"items", "targets"},
	},
	KindMultipleChoice: {
		"type": "object",
		"properties": map[string]any{
			"options": stringList,
		},
		"required": []string{"options"},
	},
	KindFillBlanks: {
		"type": "object",
		"properties": map[string]any{
			"blanks": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text":    map[string]any{"type": "string"},
						"options": stringList,
					},
					"required": []string{"text", "options"},
				},
			},
		},
		"required": []string{"blanks"},
	},
	KindArrangeCode: {
		"type": "object",
		"properties": map[string]any{
			"lines": stringList,
		},
		"required": []string{"lines"},
	},
}

// schemaCache caches compiled payload schemas by kind.
var schemaCache sync.Map // map[Kind]*jsonschema.Schema

// validatePayload checks raw payload JSON against the schema for kind.
func validatePayload(kind Kind, raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledSchema(kind)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", kind, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func compiledSchema(kind Kind) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(kind); ok {
		return cached.(*jsonschema.Schema), nil
	}

	def, ok := payloadSchemas[kind]
	if !ok {
		return nil, fmt.Errorf("no schema for kind %q", kind)
	}

	// The compiler wants a plain decoded JSON value, not Go maps with typed
	// slices.
	defBytes, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://exercise/%s.json", kind)
	if err := c.AddResource(url, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(kind, compiled)
	return compiled, nil
}
