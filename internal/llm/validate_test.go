package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func feedbackSchema() *Schema {
	return &Schema{
		Name:        "feedback-elaboration",
		Description: "Elaborated feedback for a conjugation mistake",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"explanation": map[string]any{"type": "string"},
				"tip":         map[string]any{"type": "string"},
			},
			"required":             []any{"explanation"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"explanation":"the subjunctive uses opposite vowels","tip":"drop the -o"}`)
	if err := validateResponse(feedbackSchema(), raw); err != nil {
		t.Fatalf("validateResponse: %v", err)
	}
}

func TestValidateResponse_NilSchemaPasses(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("validateResponse with nil schema: %v", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	err := validateResponse(feedbackSchema(), json.RawMessage(`{"explanation":`))
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("want ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_MissingRequiredField(t *testing.T) {
	err := validateResponse(feedbackSchema(), json.RawMessage(`{"tip":"drop the -o"}`))
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("want ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_ExtraFieldRejected(t *testing.T) {
	err := validateResponse(feedbackSchema(), json.RawMessage(`{"explanation":"ok","score":3}`))
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("want ErrInvalidResponse, got %v", err)
	}
}
