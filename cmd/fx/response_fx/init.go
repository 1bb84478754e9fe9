package response_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/zrohdes/ai-survey-platform/internal/api/controllers"
	"github.com/zrohdes/ai-survey-platform/internal/repositories"
	"github.com/zrohdes/ai-survey-platform/internal/services"
)

var Module = fx.Provide(
	provideResponseService, provideResponseController,
)

func provideResponseService(responseRepo repositories.ResponseRepository, logger *zap.Logger) services.ResponseServiceInterface {
	return services.NewResponseService(responseRepo, logger.Named("responses"))
}

func provideResponseController(responseService services.ResponseServiceInterface, logger *zap.Logger) *controllers.ResponseController {
	return controllers.NewResponseController(responseService, logger)
}
