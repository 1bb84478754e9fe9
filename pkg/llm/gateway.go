package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/zrohdes/ai-survey-platform/internal/models/domain_models"
	"github.com/zrohdes/ai-survey-platform/internal/models/request_models"
	"github.com/zrohdes/ai-survey-platform/pkg/utils"
)

// Gateway turns domain requests into language-model calls and parses the replies.
type Gateway interface {
	GenerateQuestions(ctx context.Context, in request_models.GenerateQuestionsInput) ([]domain_models.Question, error)
	AnalyzeResponses(ctx context.Context, responses []domain_models.Response) (*domain_models.AnalysisSummary, error)
	Provider() string
}

// Completer sends one system+user prompt pair to a provider and returns the raw reply text.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

var errEmptyReply = errors.New("provider returned no content")

type gateway struct {
	provider  string
	completer Completer
	analyzer  Completer
	prompts   PromptSet
	timeout   time.Duration
	logger    *zap.Logger
}

type Option func(*gateway)

// WithTimeout bounds each provider round trip. Zero leaves the caller's context untouched.
func WithTimeout(d time.Duration) Option {
	return func(g *gateway) { g.timeout = d }
}

// WithAnalysisCompleter routes AnalyzeResponses to c instead of the question completer.
func WithAnalysisCompleter(c Completer) Option {
	return func(g *gateway) { g.analyzer = c }
}

func WithLogger(logger *zap.Logger) Option {
	return func(g *gateway) { g.logger = logger }
}

func NewGateway(provider string, completer Completer, prompts PromptSet, opts ...Option) Gateway {
	g := &gateway{
		provider:  provider,
		completer: completer,
		prompts:   prompts,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.analyzer == nil {
		g.analyzer = completer
	}
	return g
}

func (g *gateway) Provider() string { return g.provider }

func (g *gateway) GenerateQuestions(ctx context.Context, in request_models.GenerateQuestionsInput) ([]domain_models.Question, error) {
	if in.NumQuestions <= 0 {
		in.NumQuestions = request_models.DefaultNumQuestions
	}
	if len(in.Types) == 0 {
		in.Types = domain_models.AllQuestionTypes
	}

	reply, err := g.complete(ctx, g.completer, g.prompts.QuestionsSystem, g.prompts.Questions(in))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGeneration, err)
	}

	questions, err := parseQuestions(reply)
	if err != nil {
		g.logger.Debug("unparseable question reply", zap.String("provider", g.provider), zap.String("reply", reply))
		return nil, fmt.Errorf("%w: %v", utils.ErrGeneration, err)
	}

	g.logger.Debug("generated questions",
		zap.String("provider", g.provider),
		zap.String("topic", in.Topic),
		zap.Int("requested", in.NumQuestions),
		zap.Int("received", len(questions)))
	return questions, nil
}

func (g *gateway) AnalyzeResponses(ctx context.Context, responses []domain_models.Response) (*domain_models.AnalysisSummary, error) {
	if responses == nil {
		responses = []domain_models.Response{}
	}
	payload, err := json.Marshal(responses)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrAnalysis, err)
	}

	reply, err := g.complete(ctx, g.analyzer, g.prompts.AnalysisSystem, g.prompts.Analysis(string(payload)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrAnalysis, err)
	}

	summary, err := parseSummary(reply)
	if err != nil {
		g.logger.Debug("unparseable analysis reply", zap.String("provider", g.provider), zap.String("reply", reply))
		return nil, fmt.Errorf("%w: %v", utils.ErrAnalysis, err)
	}
	return summary, nil
}

func (g *gateway) complete(ctx context.Context, completer Completer, system, user string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	reply, err := completer.Complete(ctx, system, user)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(reply) == "" {
		return "", errEmptyReply
	}
	return reply, nil
}

// parseQuestions accepts a bare array or an object wrapping the array in "questions".
func parseQuestions(reply string) ([]domain_models.Question, error) {
	content := utils.ExtractJSON(reply)

	var raw json.RawMessage
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("reply is not valid JSON: %w", err)
	}

	if strings.HasPrefix(content, "{") {
		var wrapped struct {
			Questions json.RawMessage `json:"questions"`
		}
		if err := json.Unmarshal(raw, &wrapped); err != nil {
			return nil, fmt.Errorf("reply is not valid JSON: %w", err)
		}
		if len(wrapped.Questions) == 0 || wrapped.Questions[0] != '[' {
			return nil, errors.New("reply is not a JSON array of questions")
		}
		raw = wrapped.Questions
	} else if !strings.HasPrefix(content, "[") {
		return nil, errors.New("reply is not a JSON array of questions")
	}

	questions := make([]domain_models.Question, 0)
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	// models sometimes emit "q1" style ids; types and options pass through untouched
	return domain_models.NumberQuestions(questions), nil
}

func parseSummary(reply string) (*domain_models.AnalysisSummary, error) {
	content := utils.ExtractJSON(reply)
	if !strings.HasPrefix(content, "{") {
		return nil, errors.New("reply is not a JSON object")
	}

	var summary domain_models.AnalysisSummary
	if err := json.Unmarshal([]byte(content), &summary); err != nil {
		return nil, fmt.Errorf("decode analysis: %w", err)
	}
	if summary.Trends == nil {
		summary.Trends = []string{}
	}
	if summary.Recommendations == nil {
		summary.Recommendations = []string{}
	}
	return &summary, nil
}
