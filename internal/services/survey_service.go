package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/zrohdes/ai-survey-platform/internal/models/domain_models"
	"github.com/zrohdes/ai-survey-platform/internal/repositories"
	"github.com/zrohdes/ai-survey-platform/pkg/utils"
)

type SurveyServiceInterface interface {
	CreateSurvey(ctx context.Context, survey domain_models.NewSurvey) (*domain_models.Survey, error)
	GetSurvey(ctx context.Context, id int64) (*domain_models.Survey, error)
	GetSurveysByUser(ctx context.Context, userID int64) ([]domain_models.Survey, error)
}

type SurveyService struct {
	surveyRepo repositories.SurveyRepository
	logger     *zap.Logger
}

func NewSurveyService(surveyRepo repositories.SurveyRepository, logger *zap.Logger) SurveyServiceInterface {
	return &SurveyService{
		surveyRepo: surveyRepo,
		logger:     logger,
	}
}

// CreateSurvey stores the questions as given. The owning user is not looked up.
func (s *SurveyService) CreateSurvey(ctx context.Context, in domain_models.NewSurvey) (*domain_models.Survey, error) {
	survey, err := s.surveyRepo.CreateSurvey(ctx, in)
	if err != nil {
		return nil, err
	}

	s.logger.Info("survey created",
		zap.Int64("survey_id", survey.ID),
		zap.Int64("user_id", survey.UserID),
		zap.Int("questions", len(survey.Questions)))
	return survey, nil
}

func (s *SurveyService) GetSurvey(ctx context.Context, id int64) (*domain_models.Survey, error) {
	survey, err := s.surveyRepo.GetSurvey(ctx, id)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, utils.NewNotFoundError("survey")
	}
	return survey, nil
}

func (s *SurveyService) GetSurveysByUser(ctx context.Context, userID int64) ([]domain_models.Survey, error) {
	return s.surveyRepo.GetSurveysByUser(ctx, userID)
}
