package survey_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/zrohdes/ai-survey-platform/internal/api/controllers"
	"github.com/zrohdes/ai-survey-platform/internal/repositories"
	"github.com/zrohdes/ai-survey-platform/internal/services"
)

var Module = fx.Provide(
	provideSurveyService, provideSurveyController,
)

func provideSurveyService(surveyRepo repositories.SurveyRepository, logger *zap.Logger) services.SurveyServiceInterface {
	return services.NewSurveyService(surveyRepo, logger.Named("surveys"))
}

func provideSurveyController(surveyService services.SurveyServiceInterface, logger *zap.Logger) *controllers.SurveyController {
	return controllers.NewSurveyController(surveyService, logger)
}
