package gateway_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/zrohdes/ai-survey-platform/internal/config"
	"github.com/zrohdes/ai-survey-platform/pkg/llm"
)

var Module = fx.Provide(ProvideGateway)

// ProvideGateway builds the one gateway selected by llm.provider.
func ProvideGateway(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (llm.Gateway, error) {
	opts := []llm.Option{
		llm.WithTimeout(cfg.LLM.Timeout),
		llm.WithLogger(logger.Named("llm")),
	}

	logger.Info("initializing language model gateway",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", cfg.LLM.Model))

	switch cfg.LLM.Provider {
	case llm.ProviderOpenAI:
		return llm.NewOpenAIGateway(cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.BaseURL, opts...), nil
	case llm.ProviderGemini:
		gateway, completer, err := llm.NewGeminiGateway(context.Background(), cfg.LLM.APIKey, cfg.LLM.Model, opts...)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.StopHook(completer.Close))
		return gateway, nil
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s. Use 'openai' or 'gemini'", cfg.LLM.Provider)
	}
}
