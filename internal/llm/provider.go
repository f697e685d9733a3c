package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over the external generation service.
// Callers must treat failures as recoverable: the engine degrades
// (omits an explanation, aborts a single test creation) rather than
// propagating generation errors as hard failures.
type Provider interface {
	// Generate sends a prompt and returns the response. When the
	// request carries a Schema, the returned Content is JSON validated
	// against it; otherwise Content is the raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes one call to the generation service.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Single-turn generation (the only
	// case in prepdeck) carries one user message.
	Messages []Message

	// Schema, when set, instructs the provider to use its native
	// structured output mechanism and validates the result. Nil means
	// freeform text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Zero value means
	// deterministic.
	Temperature float64
}

// Message is a single conversation entry.
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

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "generated-test".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model output.
type Response struct {
	// Content is validated JSON when the request had a Schema,
	// otherwise raw text.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens", "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
