package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zrohdes/ai-survey-platform/internal/api/controllers"
	"github.com/zrohdes/ai-survey-platform/internal/models/response_models"
	"github.com/zrohdes/ai-survey-platform/pkg/middleware"
)

type Controllers struct {
	Users     *controllers.UserController
	Surveys   *controllers.SurveyController
	Responses *controllers.ResponseController
	AI        *controllers.AIController
}

// HealthInfo is reported by GET /health.
type HealthInfo struct {
	Store    string
	Provider string
}

func NewRouter(logger *zap.Logger, ctrl Controllers, health HealthInfo) *gin.Engine {
	controllers.UseJSONFieldNames()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, response_models.HealthResponse{
			OK:      true,
			Name:    "AI Survey API",
			Store:   health.Store,
			Backend: health.Provider,
		})
	})

	RegisterRoutes(r, ctrl)
	return r
}

func RegisterRoutes(r *gin.Engine, ctrl Controllers) {
	apiGroup := r.Group("/api")

	users := apiGroup.Group("/users")
	users.POST("", ctrl.Users.CreateUser)
	users.GET("", ctrl.Users.FindUserByEmail)
	users.GET("/:id", ctrl.Users.GetUser)
	users.GET("/:id/surveys", ctrl.Users.ListUserSurveys)

	surveys := apiGroup.Group("/surveys")
	surveys.POST("", ctrl.Surveys.CreateSurvey)
	surveys.GET("/:id", ctrl.Surveys.GetSurvey)
	surveys.POST("/:id/responses", ctrl.Responses.CreateResponse)
	surveys.GET("/:id/responses", ctrl.Responses.ListResponses)

	ai := apiGroup.Group("/ai")
	ai.POST("/generate-questions", ctrl.AI.GenerateQuestions)
	ai.POST("/analyze-responses", ctrl.AI.AnalyzeResponses)
}
