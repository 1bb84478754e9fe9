package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zrohdes/ai-survey-platform/internal/models/request_models"
	"github.com/zrohdes/ai-survey-platform/internal/services"
	"github.com/zrohdes/ai-survey-platform/pkg/utils"
)

type UserController struct {
	userService   services.UserServiceInterface
	surveyService services.SurveyServiceInterface
	logger        *zap.Logger
}

func NewUserController(userService services.UserServiceInterface, surveyService services.SurveyServiceInterface, logger *zap.Logger) *UserController {
	return &UserController{
		userService:   userService,
		surveyService: surveyService,
		logger:        logger,
	}
}

// CreateUser godoc
// @Summary Create a user
// @Description Register an email address as a survey owner
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.CreateUserRequest true "User payload"
// @Success 200 {object} domain_models.User
// @Failure 400 {object} utils.APIResponse
// @Router /api/users [post]
func (u *UserController) CreateUser(c *gin.Context) {
	var req request_models.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := u.userService.CreateUser(c.Request.Context(), req.Email)
	if err != nil {
		utils.HandleServiceError(c, u.logger, err)
		return
	}

	utils.RespondSuccess(c, user)
}

// GetUser godoc
// @Summary Get a user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} domain_models.User
// @Failure 404 {object} utils.APIResponse
// @Router /api/users/{id} [get]
func (u *UserController) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id", "user")
	if !ok {
		return
	}

	user, err := u.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, u.logger, err)
		return
	}

	utils.RespondSuccess(c, user)
}

// FindUserByEmail godoc
// @Summary Look up a user by email
// @Tags Users
// @Produce json
// @Param email query string true "Email address"
// @Success 200 {object} domain_models.User
// @Failure 404 {object} utils.APIResponse
// @Router /api/users [get]
func (u *UserController) FindUserByEmail(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		utils.RespondError(c, http.StatusBadRequest, "email query parameter is required")
		return
	}

	user, err := u.userService.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		utils.HandleServiceError(c, u.logger, err)
		return
	}

	utils.RespondSuccess(c, user)
}

// ListUserSurveys godoc
// @Summary List a user's surveys
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} domain_models.Survey
// @Router /api/users/{id}/surveys [get]
func (u *UserController) ListUserSurveys(c *gin.Context) {
	userID, ok := pathID(c, "id", "user")
	if !ok {
		return
	}

	surveys, err := u.surveyService.GetSurveysByUser(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, u.logger, err)
		return
	}

	utils.RespondSuccess(c, surveys)
}
