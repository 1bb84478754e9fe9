package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/zrohdes/ai-survey-platform/internal/models/domain_models"
	"github.com/zrohdes/ai-survey-platform/internal/models/request_models"
	"github.com/zrohdes/ai-survey-platform/pkg/llm"
)

type AIServiceInterface interface {
	GenerateQuestions(ctx context.Context, in request_models.GenerateQuestionsInput) ([]domain_models.Question, error)
	AnalyzeResponses(ctx context.Context, responses []domain_models.Response) (*domain_models.AnalysisSummary, error)
}

type AIService struct {
	gateway llm.Gateway
	logger  *zap.Logger
}

func NewAIService(gateway llm.Gateway, logger *zap.Logger) AIServiceInterface {
	return &AIService{
		gateway: gateway,
		logger:  logger,
	}
}

func (a *AIService) GenerateQuestions(ctx context.Context, in request_models.GenerateQuestionsInput) ([]domain_models.Question, error) {
	start := time.Now()

	questions, err := a.gateway.GenerateQuestions(ctx, in)
	if err != nil {
		return nil, err
	}

	a.logger.Info("questions generated",
		zap.String("provider", a.gateway.Provider()),
		zap.Int("count", len(questions)),
		zap.Duration("took", time.Since(start)))
	return questions, nil
}

func (a *AIService) AnalyzeResponses(ctx context.Context, responses []domain_models.Response) (*domain_models.AnalysisSummary, error) {
	start := time.Now()

	summary, err := a.gateway.AnalyzeResponses(ctx, responses)
	if err != nil {
		return nil, err
	}

	a.logger.Info("responses analyzed",
		zap.String("provider", a.gateway.Provider()),
		zap.Int("responses", len(responses)),
		zap.Duration("took", time.Since(start)))
	return summary, nil
}
