package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zrohdes/ai-survey-platform/internal/models/request_models"
	"github.com/zrohdes/ai-survey-platform/internal/services"
	"github.com/zrohdes/ai-survey-platform/pkg/utils"
)

type SurveyController struct {
	surveyService services.SurveyServiceInterface
	logger        *zap.Logger
}

func NewSurveyController(surveyService services.SurveyServiceInterface, logger *zap.Logger) *SurveyController {
	return &SurveyController{
		surveyService: surveyService,
		logger:        logger,
	}
}

// CreateSurvey godoc
// @Summary Create a survey
// @Description Store a titled survey with its (usually generated) questions
// @Tags Surveys
// @Accept json
// @Produce json
// @Param request body request_models.CreateSurveyRequest true "Survey payload"
// @Success 200 {object} domain_models.Survey
// @Failure 400 {object} utils.APIResponse
// @Router /api/surveys [post]
func (s *SurveyController) CreateSurvey(c *gin.Context) {
	var req request_models.CreateSurveyRequest
	if !bindJSON(c, &req) {
		return
	}

	survey, err := s.surveyService.CreateSurvey(c.Request.Context(), req.ToNewSurvey())
	if err != nil {
		utils.HandleServiceError(c, s.logger, err)
		return
	}

	utils.RespondSuccess(c, survey)
}

// GetSurvey godoc
// @Summary Get a survey
// @Tags Surveys
// @Produce json
// @Param id path int true "Survey ID"
// @Success 200 {object} domain_models.Survey
// @Failure 404 {object} utils.APIResponse
// @Router /api/surveys/{id} [get]
func (s *SurveyController) GetSurvey(c *gin.Context) {
	id, ok := pathID(c, "id", "survey")
	if !ok {
		return
	}

	survey, err := s.surveyService.GetSurvey(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, s.logger, err)
		return
	}

	utils.RespondSuccess(c, survey)
}
