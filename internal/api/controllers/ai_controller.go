package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zrohdes/ai-survey-platform/internal/models/request_models"
	"github.com/zrohdes/ai-survey-platform/internal/services"
	"github.com/zrohdes/ai-survey-platform/pkg/utils"
)

type AIController struct {
	aiService services.AIServiceInterface
	logger    *zap.Logger
}

func NewAIController(aiService services.AIServiceInterface, logger *zap.Logger) *AIController {
	return &AIController{
		aiService: aiService,
		logger:    logger,
	}
}

// GenerateQuestions godoc
// @Summary Generate survey questions
// @Description Ask the language model for questions about a topic
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.GenerateQuestionsRequest true "Topic, optional count (default 5) and types"
// @Success 200 {array} domain_models.Question
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /api/ai/generate-questions [post]
func (a *AIController) GenerateQuestions(c *gin.Context) {
	var req request_models.GenerateQuestionsRequest
	if !bindJSON(c, &req) {
		return
	}

	questions, err := a.aiService.GenerateQuestions(c.Request.Context(), req.ToInput())
	if err != nil {
		utils.HandleServiceError(c, a.logger, err)
		return
	}

	utils.RespondSuccess(c, questions)
}

// AnalyzeResponses godoc
// @Summary Analyze responses
// @Description Summarize sentiment, trends and recommendations over a batch of responses
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.AnalyzeResponsesRequest true "Responses to analyze"
// @Success 200 {object} domain_models.AnalysisSummary
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /api/ai/analyze-responses [post]
func (a *AIController) AnalyzeResponses(c *gin.Context) {
	var req request_models.AnalyzeResponsesRequest
	if !bindJSON(c, &req) {
		return
	}

	summary, err := a.aiService.AnalyzeResponses(c.Request.Context(), req.Responses)
	if err != nil {
		utils.HandleServiceError(c, a.logger, err)
		return
	}

	utils.RespondSuccess(c, summary)
}
