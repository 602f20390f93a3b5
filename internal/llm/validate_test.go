package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func enrichmentTestSchema() *Schema {
	return &Schema{
		Name:        "entry-enrichment",
		Description: "Study material for a vocabulary entry",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"definition": map[string]any{"type": "string"},
				"examples": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 1,
				},
				"register": map[string]any{
					"type": "string",
					"enum": []any{"formal", "neutral", "informal"},
				},
			},
			"required": []any{"definition", "examples"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{
			name: "valid enrichment",
			raw:  `{"definition":"a building for living in","examples":["Das Haus ist alt."],"register":"neutral"}`,
		},
		{
			name: "optional field omitted",
			raw:  `{"definition":"a building for living in","examples":["Das Haus ist alt."]}`,
		},
		{
			name:    "missing required examples",
			raw:     `{"definition":"a building for living in"}`,
			wantErr: true,
		},
		{
			name:    "examples not an array",
			raw:     `{"definition":"a building for living in","examples":"Das Haus ist alt."}`,
			wantErr: true,
		},
		{
			name:    "register outside enum",
			raw:     `{"definition":"a building","examples":["x"],"register":"slangy"}`,
			wantErr: true,
		},
		{
			name:    "malformed JSON",
			raw:     `{not json}`,
			wantErr: true,
		},
		{
			name:    "empty response",
			raw:     ``,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(enrichmentTestSchema(), json.RawMessage(tt.raw))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected validation error")
				}
				var invErr *ErrInvalidResponse
				if !errors.As(err, &invErr) {
					t.Fatalf("expected ErrInvalidResponse, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateResponse_NilSchemaAcceptsAnything(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedGrade(t *testing.T) {
	schema := &Schema{
		Name:        "graded-answer",
		Description: "A graded translation with alternatives",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"grade": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"acceptable": map[string]any{"type": "boolean"},
					},
					"required": []any{"acceptable"},
				},
				"alternatives": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"grade", "alternatives"},
		},
	}

	valid := json.RawMessage(`{"grade":{"acceptable":true},"alternatives":["home","dwelling"]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"grade":{"acceptable":true},"alternatives":[1,2]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
