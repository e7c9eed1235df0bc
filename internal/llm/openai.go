package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// chatModel is fixed: the relay offers exactly one conversation-free
// completion per call, no model selection from the client.
const chatModel = "gpt-4o-mini"

// OpenAIConfig holds configuration for the OpenAI chat backend.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string // override for tests; empty means the public API
}

type OpenAIProvider struct {
	client *openai.Client
}

func NewOpenAIProvider(cfg OpenAIConfig) *OpenAIProvider {
	c := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		c.BaseURL = cfg.BaseURL
	}
	return &OpenAIProvider{client: openai.NewClientWithConfig(c)}
}

func (p *OpenAIProvider) Name() string { return "openai" }

// Complete sends the prompt verbatim as a single user message and
// returns the first choice's content.
func (p *OpenAIProvider) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai chat: no completion choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
