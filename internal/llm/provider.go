// Package llm abstracts the external text collaborator used to elaborate
// feedback. Providers return structured JSON; decorators add retry and
// event logging.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction consumers depend on. Implementations wrap
// one vendor SDK; decorators compose around the interface.
type Provider interface {
	// Generate sends a prompt and returns a structured response. When the
	// request carries a Schema the provider uses its native structured
	// output mechanism and the Content is validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider targets.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Feedback elaboration is single-turn,
	// so this usually holds one user message.
	Messages []Message

	// Schema, when set, constrains the response to conforming JSON.
	// When nil the Content is the raw text wrapped as a JSON string.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 to 1.0. Zero means
	// deterministic.
	Temperature float64
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "feedback-elaboration".
	Name string

	// Description guides generation.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output, validated against the request
	// Schema when one was set.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
