package repositories

import (
	"context"

	"github.com/zrohdes/ai-survey-platform/internal/models/domain_models"
)

// Lookups return (nil, nil) when nothing matches.

type UserRepository interface {
	CreateUser(ctx context.Context, email string) (*domain_models.User, error)
	GetUser(ctx context.Context, id int64) (*domain_models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain_models.User, error)
}

type SurveyRepository interface {
	CreateSurvey(ctx context.Context, survey domain_models.NewSurvey) (*domain_models.Survey, error)
	GetSurvey(ctx context.Context, id int64) (*domain_models.Survey, error)
	// GetSurveysByUser returns the user's surveys in creation order.
	GetSurveysByUser(ctx context.Context, userID int64) ([]domain_models.Survey, error)
}

type ResponseRepository interface {
	CreateResponse(ctx context.Context, response domain_models.NewResponse) (*domain_models.Response, error)
	// GetResponsesBySurvey returns the survey's responses in creation order.
	GetResponsesBySurvey(ctx context.Context, surveyID int64) ([]domain_models.Response, error)
}
