// Package surveyclient is a typed HTTP+JSON client for the survey API.
package surveyclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/zrohdes/ai-survey-platform/internal/models/domain_models"
)

// APIError is returned for any non-2xx reply.
type APIError struct {
	Status  int
	Message string
	TraceID string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("api error: %d %s", e.Status, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 2 * time.Minute},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type CreateSurveyParams struct {
	Title       string                   `json:"title"`
	Description *string                  `json:"description,omitempty"`
	UserID      int64                    `json:"userId"`
	Questions   []domain_models.Question `json:"questions"`
}

type GenerateQuestionsParams struct {
	Topic        string                       `json:"topic"`
	NumQuestions int                          `json:"numQuestions,omitempty"`
	Types        []domain_models.QuestionType `json:"types,omitempty"`
}

func (c *Client) CreateUser(ctx context.Context, email string) (*domain_models.User, error) {
	var user domain_models.User
	err := c.do(ctx, http.MethodPost, "/api/users", map[string]string{"email": email}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetUser(ctx context.Context, id int64) (*domain_models.User, error) {
	var user domain_models.User
	if err := c.do(ctx, http.MethodGet, "/api/users/"+itoa(id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) FindUserByEmail(ctx context.Context, email string) (*domain_models.User, error) {
	var user domain_models.User
	path := "/api/users?" + url.Values{"email": {email}}.Encode()
	if err := c.do(ctx, http.MethodGet, path, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ListSurveys(ctx context.Context, userID int64) ([]domain_models.Survey, error) {
	var surveys []domain_models.Survey
	if err := c.do(ctx, http.MethodGet, "/api/users/"+itoa(userID)+"/surveys", nil, &surveys); err != nil {
		return nil, err
	}
	return surveys, nil
}

func (c *Client) CreateSurvey(ctx context.Context, params CreateSurveyParams) (*domain_models.Survey, error) {
	if params.Questions == nil {
		params.Questions = []domain_models.Question{}
	}
	var survey domain_models.Survey
	if err := c.do(ctx, http.MethodPost, "/api/surveys", params, &survey); err != nil {
		return nil, err
	}
	return &survey, nil
}

func (c *Client) GetSurvey(ctx context.Context, id int64) (*domain_models.Survey, error) {
	var survey domain_models.Survey
	if err := c.do(ctx, http.MethodGet, "/api/surveys/"+itoa(id), nil, &survey); err != nil {
		return nil, err
	}
	return &survey, nil
}

func (c *Client) SubmitResponse(ctx context.Context, surveyID int64, answers []domain_models.Answer) (*domain_models.Response, error) {
	if answers == nil {
		answers = []domain_models.Answer{}
	}
	body := struct {
		SurveyID int64                  `json:"surveyId"`
		Answers  []domain_models.Answer `json:"answers"`
	}{SurveyID: surveyID, Answers: answers}

	var response domain_models.Response
	if err := c.do(ctx, http.MethodPost, "/api/surveys/"+itoa(surveyID)+"/responses", body, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *Client) ListResponses(ctx context.Context, surveyID int64) ([]domain_models.Response, error) {
	var responses []domain_models.Response
	if err := c.do(ctx, http.MethodGet, "/api/surveys/"+itoa(surveyID)+"/responses", nil, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

func (c *Client) GenerateQuestions(ctx context.Context, params GenerateQuestionsParams) ([]domain_models.Question, error) {
	var questions []domain_models.Question
	if err := c.do(ctx, http.MethodPost, "/api/ai/generate-questions", params, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (c *Client) AnalyzeResponses(ctx context.Context, responses []domain_models.Response) (*domain_models.AnalysisSummary, error) {
	if responses == nil {
		responses = []domain_models.Response{}
	}
	body := map[string]interface{}{"responses": responses}

	var summary domain_models.AnalysisSummary
	if err := c.do(ctx, http.MethodPost, "/api/ai/analyze-responses", body, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, TraceID: resp.Header.Get("X-Trace-ID")}
		var envelope struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &envelope) == nil {
			apiErr.Message = envelope.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
