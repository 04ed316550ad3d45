// Package llm provides interchangeable bindings to chat-completion style
// text-generation providers. Every binding sends one system message and one
// user message and asks the provider for a JSON-shaped reply.
package llm

import "context"

// Client sends a single chat completion to a provider and returns the
// assistant's raw reply text. Implementations must honor ctx cancellation
// and deadlines on the outbound call.
type Client interface {
	// Name identifies the binding in logs and diagnostic events.
	Name() string
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
