// Package ai defines the language-model contract consumed by the extraction
// and question-generation components.
package ai

import "context"

// Message roles. Providers map these onto their own conventions.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one role-tagged entry of a chat-completion request.
type Message struct {
	Role    string
	Content string
}

// Options bound a single generation call.
type Options struct {
	Temperature float32
	MaxTokens   int32
}

// Generator produces text from an ordered list of role-tagged messages.
type Generator interface {
	Generate(ctx context.Context, messages []Message, opts Options) (string, error)
}
