// Package llm talks to chat-completion providers that support forced
// function calling, returning the arguments of the forced call.
package llm

import (
	"github.com/sashabaranov/go-openai/jsonschema"
)

// Role is the author of a prompt message
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is a single prompt message
type Message struct {
	Role    Role
	Content string
}

// Tool declares the function the model is forced to call.
// Parameters is the JSON Schema of the expected answer.
type Tool struct {
	Name        string
	Description string
	Parameters  jsonschema.Definition
}

// CompletionRequest is one prompt plus the schema its answer must follow
type CompletionRequest struct {
	Messages []Message
	Tool     Tool
}
