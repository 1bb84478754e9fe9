package ai_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/zrohdes/ai-survey-platform/internal/api/controllers"
	"github.com/zrohdes/ai-survey-platform/internal/services"
	"github.com/zrohdes/ai-survey-platform/pkg/llm"
)

var Module = fx.Provide(
	provideAIService, provideAIController,
)

func provideAIService(gateway llm.Gateway, logger *zap.Logger) services.AIServiceInterface {
	return services.NewAIService(gateway, logger.Named("ai"))
}

func provideAIController(aiService services.AIServiceInterface, logger *zap.Logger) *controllers.AIController {
	return controllers.NewAIController(aiService, logger)
}
