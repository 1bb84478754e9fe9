package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const ProviderOpenAI = "openai"

type OpenAICompleter struct {
	client *openai.Client
	model  string
}

// NewOpenAICompleter builds a chat-completion client. baseURL may be empty for the public API.
func NewOpenAICompleter(apiKey, model, baseURL string) *OpenAICompleter {
	if model == "" {
		model = openai.GPT4o
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAICompleter{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *OpenAICompleter) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errEmptyReply
	}
	return resp.Choices[0].Message.Content, nil
}

func NewOpenAIGateway(apiKey, model, baseURL string, opts ...Option) Gateway {
	return NewGateway(ProviderOpenAI, NewOpenAICompleter(apiKey, model, baseURL), OpenAIPrompts, opts...)
}
