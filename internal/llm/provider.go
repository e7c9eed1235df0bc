// Package llm wraps the chat-completion provider behind a small
// interface so handlers can be tested with a fake implementation.
package llm

import "context"

// Provider produces a single chat completion for a prompt.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Name() string
}
