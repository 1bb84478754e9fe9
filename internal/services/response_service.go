package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/zrohdes/ai-survey-platform/internal/models/domain_models"
	"github.com/zrohdes/ai-survey-platform/internal/repositories"
)

type ResponseServiceInterface interface {
	CreateResponse(ctx context.Context, response domain_models.NewResponse) (*domain_models.Response, error)
	GetResponsesBySurvey(ctx context.Context, surveyID int64) ([]domain_models.Response, error)
}

type ResponseService struct {
	responseRepo repositories.ResponseRepository
	logger       *zap.Logger
}

func NewResponseService(responseRepo repositories.ResponseRepository, logger *zap.Logger) ResponseServiceInterface {
	return &ResponseService{
		responseRepo: responseRepo,
		logger:       logger,
	}
}

// CreateResponse neither checks that the survey exists nor matches answers to its questions.
func (r *ResponseService) CreateResponse(ctx context.Context, in domain_models.NewResponse) (*domain_models.Response, error) {
	response, err := r.responseRepo.CreateResponse(ctx, in)
	if err != nil {
		return nil, err
	}

	r.logger.Info("response recorded",
		zap.Int64("response_id", response.ID),
		zap.Int64("survey_id", response.SurveyID),
		zap.Int("answers", len(response.Answers)))
	return response, nil
}

func (r *ResponseService) GetResponsesBySurvey(ctx context.Context, surveyID int64) ([]domain_models.Response, error) {
	return r.responseRepo.GetResponsesBySurvey(ctx, surveyID)
}
