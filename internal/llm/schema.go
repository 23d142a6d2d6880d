package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/hsuanlin/overtime-tracker/internal/entity"
)

// BuildOvertimeJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. It is passed to the API as a structured-output constraint and
// used locally to validate the response; unknown or missing fields are a
// contract violation, never silently dropped.
func BuildOvertimeJSONSchema() map[string]any {
	entryProps := map[string]any{
		entity.FieldEmployeeName: map[string]any{"type": "string"},
		entity.FieldDate:         map[string]any{"type": "string"},
		entity.FieldStartTime:    map[string]any{"type": "string"},
		entity.FieldEndTime:      map[string]any{"type": "string"},
		entity.FieldReason:       map[string]any{"type": "string"},
		entity.FieldType:         map[string]any{"type": "string"},
		entity.FieldHours:        map[string]any{"type": "number"},
	}
	entryRequired := []string{
		entity.FieldEmployeeName,
		entity.FieldDate,
		entity.FieldStartTime,
		entity.FieldEndTime,
		entity.FieldReason,
		entity.FieldType,
		entity.FieldHours,
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"entries"},
		"properties": map[string]any{
			"entries": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties":           entryProps,
					"required":             entryRequired,
				},
			},
		},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
