package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name: "validate-test",
		Definition: map[string]any{
			"type":     "object",
			"required": []string{"name", "count"},
			"properties": map[string]any{
				"name":  map[string]any{"type": "string"},
				"count": map[string]any{"type": "integer", "minimum": 0},
			},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema should skip validation, got %v", err)
	}
}

func TestValidateResponseValid(t *testing.T) {
	raw := json.RawMessage(`{"name":"fractions","count":5}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponseFailures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"malformed JSON", `{"name":`},
		{"missing field", `{"name":"fractions"}`},
		{"wrong type", `{"name":"fractions","count":"five"}`},
		{"constraint violated", `{"name":"fractions","count":-1}`},
		{"extra field", `{"name":"fractions","count":5,"bonus":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema(), json.RawMessage(tt.raw))
			if err == nil {
				t.Fatal("expected validation error")
			}
			var inv *ErrInvalidResponse
			if !errors.As(err, &inv) {
				t.Fatalf("expected ErrInvalidResponse, got %T", err)
			}
		})
	}
}

func TestSchemaCacheReuse(t *testing.T) {
	s := testSchema()

	first, err := getCompiledSchema(s)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	second, err := getCompiledSchema(s)
	if err != nil {
		t.Fatalf("recompile: %v", err)
	}
	if first != second {
		t.Error("expected the cached compiled schema on the second lookup")
	}
}
