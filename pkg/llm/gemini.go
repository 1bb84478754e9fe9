package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const ProviderGemini = "gemini"

type GeminiCompleter struct {
	client          *genai.Client
	model           string
	temperature     float32
	maxOutputTokens int32
	safety          []*genai.SafetySetting
}

func NewGeminiCompleter(ctx context.Context, apiKey, model string) (*GeminiCompleter, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiCompleter{
		client:          client,
		model:           model,
		temperature:     0.7,
		maxOutputTokens: 1000,
		safety: []*genai.SafetySetting{
			{
				Category:  genai.HarmCategoryHarassment,
				Threshold: genai.HarmBlockMediumAndAbove,
			},
		},
	}, nil
}

// WithoutSafetySettings returns a completer on the same client that sends no safety settings.
// Analysis calls use it.
func (c *GeminiCompleter) WithoutSafetySettings() *GeminiCompleter {
	out := *c
	out.safety = nil
	return &out
}

func (c *GeminiCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(c.temperature)
	m.SetMaxOutputTokens(c.maxOutputTokens)
	m.SafetySettings = c.safety
	if system != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	resp, err := m.GenerateContent(ctx, genai.Text(user))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errEmptyReply
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}

func (c *GeminiCompleter) Close() error {
	return c.client.Close()
}

// NewGeminiGateway also returns the completer so the caller can close the client on shutdown.
// Only question generation applies the harassment safety setting.
func NewGeminiGateway(ctx context.Context, apiKey, model string, opts ...Option) (Gateway, *GeminiCompleter, error) {
	completer, err := NewGeminiCompleter(ctx, apiKey, model)
	if err != nil {
		return nil, nil, err
	}
	opts = append([]Option{WithAnalysisCompleter(completer.WithoutSafetySettings())}, opts...)
	return NewGateway(ProviderGemini, completer, GeminiPrompts, opts...), completer, nil
}
