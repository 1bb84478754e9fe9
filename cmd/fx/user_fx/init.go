package user_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/zrohdes/ai-survey-platform/internal/api/controllers"
	"github.com/zrohdes/ai-survey-platform/internal/repositories"
	"github.com/zrohdes/ai-survey-platform/internal/services"
)

var Module = fx.Provide(
	provideUserService, provideUserController,
)

func provideUserService(userRepo repositories.UserRepository, logger *zap.Logger) services.UserServiceInterface {
	return services.NewUserService(userRepo, logger.Named("users"))
}

func provideUserController(userService services.UserServiceInterface, surveyService services.SurveyServiceInterface, logger *zap.Logger) *controllers.UserController {
	return controllers.NewUserController(userService, surveyService, logger)
}
