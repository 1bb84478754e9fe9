// Package dashboard implements the survey owner's flows: creating a survey from a
// topic and loading the analytics panel.
package dashboard

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/zrohdes/ai-survey-platform/internal/models/domain_models"
	"github.com/zrohdes/ai-survey-platform/pkg/surveyclient"
)

const (
	dialogQuestionCount = 5
	minFieldLength      = 3
)

// API is the part of the survey API the dashboard talks to.
type API interface {
	ListSurveys(ctx context.Context, userID int64) ([]domain_models.Survey, error)
	ListResponses(ctx context.Context, surveyID int64) ([]domain_models.Response, error)
	GenerateQuestions(ctx context.Context, params surveyclient.GenerateQuestionsParams) ([]domain_models.Question, error)
	CreateSurvey(ctx context.Context, params surveyclient.CreateSurveyParams) (*domain_models.Survey, error)
	AnalyzeResponses(ctx context.Context, responses []domain_models.Response) (*domain_models.AnalysisSummary, error)
}

type CreateSurveyInput struct {
	UserID      int64
	Title       string
	Description string
	Topic       string
}

func (in CreateSurveyInput) Validate() error {
	if len(strings.TrimSpace(in.Title)) < minFieldLength {
		return fmt.Errorf("title must be at least %d characters", minFieldLength)
	}
	if len(strings.TrimSpace(in.Topic)) < minFieldLength {
		return fmt.Errorf("topic must be at least %d characters", minFieldLength)
	}
	if in.UserID < 1 {
		return fmt.Errorf("a user is required")
	}
	return nil
}

// CreateSurveyFromTopic generates questions for the topic, then stores a survey holding them.
func CreateSurveyFromTopic(ctx context.Context, api API, in CreateSurveyInput) (*domain_models.Survey, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	questions, err := api.GenerateQuestions(ctx, surveyclient.GenerateQuestionsParams{
		Topic:        in.Topic,
		NumQuestions: dialogQuestionCount,
		Types:        domain_models.AllQuestionTypes,
	})
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}

	description := in.Description
	survey, err := api.CreateSurvey(ctx, surveyclient.CreateSurveyParams{
		Title:       in.Title,
		Description: &description,
		UserID:      in.UserID,
		Questions:   questions,
	})
	if err != nil {
		return nil, fmt.Errorf("create survey: %w", err)
	}
	return survey, nil
}

// SurveyCard is one survey as listed on the dashboard, with the responses it has collected.
type SurveyCard struct {
	Survey    domain_models.Survey
	Responses []domain_models.Response
}

// LoadSurveyCards lists the user's surveys and fetches each survey's responses concurrently.
func LoadSurveyCards(ctx context.Context, api API, userID int64) ([]SurveyCard, error) {
	surveys, err := api.ListSurveys(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list surveys: %w", err)
	}

	cards := make([]SurveyCard, len(surveys))
	g, gctx := errgroup.WithContext(ctx)
	for i, survey := range surveys {
		i, survey := i, survey
		cards[i].Survey = survey
		g.Go(func() error {
			responses, err := api.ListResponses(gctx, survey.ID)
			if err != nil {
				return fmt.Errorf("list responses of survey %d: %w", survey.ID, err)
			}
			cards[i].Responses = responses
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return cards, nil
}

// Analyze sends every response on the cards, in card order, to one analysis call.
// It returns a nil summary when there are no cards.
func Analyze(ctx context.Context, api API, cards []SurveyCard) (*domain_models.AnalysisSummary, error) {
	if len(cards) == 0 {
		return nil, nil
	}

	all := make([]domain_models.Response, 0)
	for _, card := range cards {
		all = append(all, card.Responses...)
	}

	summary, err := api.AnalyzeResponses(ctx, all)
	if err != nil {
		return nil, fmt.Errorf("analyze responses: %w", err)
	}
	return summary, nil
}

// LoadAnalytics analyzes every response to every survey of the user in one call.
// It returns a nil summary when the user has no surveys.
func LoadAnalytics(ctx context.Context, api API, userID int64) (*domain_models.AnalysisSummary, error) {
	cards, err := LoadSurveyCards(ctx, api, userID)
	if err != nil {
		return nil, err
	}
	return Analyze(ctx, api, cards)
}

type SentimentShare struct {
	Label   string
	Count   int
	Percent float64
}

// SentimentShares converts the counts into the proportions drawn by the chart.
// Negative counts are treated as zero. All percentages are zero when there are no counts.
func SentimentShares(summary *domain_models.AnalysisSummary) []SentimentShare {
	var s domain_models.Sentiment
	if summary != nil {
		s = summary.Sentiment.NonNegative()
	}

	shares := []SentimentShare{
		{Label: "Positive", Count: s.Positive},
		{Label: "Neutral", Count: s.Neutral},
		{Label: "Negative", Count: s.Negative},
	}
	if total := s.Total(); total > 0 {
		for i := range shares {
			shares[i].Percent = float64(shares[i].Count) * 100 / float64(total)
		}
	}
	return shares
}
