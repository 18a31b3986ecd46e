// Package llm abstracts the generation backends that author lesson content.
// Everything above it consumes the Provider interface; the adapters in this
// package translate to the vendor SDKs and normalize their failure modes.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates structured lesson documents from prompts.
type Provider interface {
	// Generate sends one request and returns the structured response. When
	// the request carries a Schema, the returned Content is JSON that was
	// validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Topic generation is single-turn, so this
	// is usually one user message.
	Messages []Message

	// Schema, when set, makes the provider use its native structured-output
	// mechanism and validate the result. When nil, Content is raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0,1]; zero means deterministic.
	Temperature float64
}

// Message is one turn in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is the JSON Schema contract a response must satisfy.
type Schema struct {
	// Name identifies the schema to the provider (tool name for Anthropic,
	// response-format name for OpenAI). Kebab-case, e.g. "lesson-topic".
	Name string

	// Description guides the model toward the intended shape.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is validated JSON when the request had a Schema, raw text
	// otherwise.
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
