package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zrohdes/ai-survey-platform/internal/models/request_models"
	"github.com/zrohdes/ai-survey-platform/internal/services"
	"github.com/zrohdes/ai-survey-platform/pkg/utils"
)

type ResponseController struct {
	responseService services.ResponseServiceInterface
	logger          *zap.Logger
}

func NewResponseController(responseService services.ResponseServiceInterface, logger *zap.Logger) *ResponseController {
	return &ResponseController{
		responseService: responseService,
		logger:          logger,
	}
}

// CreateResponse godoc
// @Summary Submit a response
// @Description Record one respondent's answers to a survey
// @Tags Responses
// @Accept json
// @Produce json
// @Param id path int true "Survey ID"
// @Param request body request_models.CreateResponseRequest true "Response payload"
// @Success 200 {object} domain_models.Response
// @Failure 400 {object} utils.APIResponse
// @Router /api/surveys/{id}/responses [post]
func (r *ResponseController) CreateResponse(c *gin.Context) {
	surveyID, ok := pathID(c, "id", "survey")
	if !ok {
		return
	}

	var req request_models.CreateResponseRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.SurveyID != surveyID {
		utils.RespondError(c, http.StatusBadRequest, "surveyId does not match the survey in the path")
		return
	}

	response, err := r.responseService.CreateResponse(c.Request.Context(), req.ToNewResponse())
	if err != nil {
		utils.HandleServiceError(c, r.logger, err)
		return
	}

	utils.RespondSuccess(c, response)
}

// ListResponses godoc
// @Summary List a survey's responses
// @Tags Responses
// @Produce json
// @Param id path int true "Survey ID"
// @Success 200 {array} domain_models.Response
// @Router /api/surveys/{id}/responses [get]
func (r *ResponseController) ListResponses(c *gin.Context) {
	surveyID, ok := pathID(c, "id", "survey")
	if !ok {
		return
	}

	responses, err := r.responseService.GetResponsesBySurvey(c.Request.Context(), surveyID)
	if err != nil {
		utils.HandleServiceError(c, r.logger, err)
		return
	}

	utils.RespondSuccess(c, responses)
}
