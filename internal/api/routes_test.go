package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zrohdes/ai-survey-platform/internal/api/controllers"
	"github.com/zrohdes/ai-survey-platform/internal/models/domain_models"
	"github.com/zrohdes/ai-survey-platform/internal/models/request_models"
	"github.com/zrohdes/ai-survey-platform/internal/repositories"
	"github.com/zrohdes/ai-survey-platform/internal/services"
	"github.com/zrohdes/ai-survey-platform/pkg/utils"
)

type fakeGateway struct {
	questions []domain_models.Question
	summary   *domain_models.AnalysisSummary
	err       error
	lastInput request_models.GenerateQuestionsInput
}

func (f *fakeGateway) GenerateQuestions(ctx context.Context, in request_models.GenerateQuestionsInput) ([]domain_models.Question, error) {
	f.lastInput = in
	return f.questions, f.err
}

func (f *fakeGateway) AnalyzeResponses(ctx context.Context, responses []domain_models.Response) (*domain_models.AnalysisSummary, error) {
	return f.summary, f.err
}

func (f *fakeGateway) Provider() string { return "fake" }

func newTestRouter(t *testing.T, gw *fakeGateway) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	store := repositories.NewMemoryStore()
	userSvc := services.NewUserService(store, logger)
	surveySvc := services.NewSurveyService(store, logger)
	responseSvc := services.NewResponseService(store, logger)
	aiSvc := services.NewAIService(gw, logger)

	return NewRouter(logger, Controllers{
		Users:     controllers.NewUserController(userSvc, surveySvc, logger),
		Surveys:   controllers.NewSurveyController(surveySvc, logger),
		Responses: controllers.NewResponseController(responseSvc, logger),
		AI:        controllers.NewAIController(aiSvc, logger),
	}, HealthInfo{Store: "memory", Provider: gw.Provider()})
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

const surveyBody = `{
	"title": "Lunch",
	"description": "Friday lunch feedback",
	"userId": 1,
	"questions": [
		{"id": 1, "text": "Did you like it?", "type": "multiple_choice", "options": ["Yes", "No"]},
		{"id": 2, "text": "Rate the food", "type": "rating"}
	]
}`

func TestHealth(t *testing.T) {
	r := newTestRouter(t, &fakeGateway{})

	w := do(t, r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok": true, "name": "AI Survey API", "store": "memory", "llm_provider": "fake"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
}

func TestUserRoutes(t *testing.T) {
	r := newTestRouter(t, &fakeGateway{})

	w := do(t, r, http.MethodPost, "/api/users", `{"email": "jane@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	user := decode[domain_models.User](t, w)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "jane@example.com", user.Email)

	w = do(t, r, http.MethodGet, "/api/users/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, user.Email, decode[domain_models.User](t, w).Email)

	w = do(t, r, http.MethodGet, "/api/users?email=jane@example.com", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), decode[domain_models.User](t, w).ID)

	w = do(t, r, http.MethodGet, "/api/users/7", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decode[utils.APIResponse](t, w).Message)

	w = do(t, r, http.MethodGet, "/api/users", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, "/api/users/abc", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid user id", decode[utils.APIResponse](t, w).Message)
}

func TestCreateUserValidation(t *testing.T) {
	r := newTestRouter(t, &fakeGateway{})

	cases := []struct {
		name    string
		body    string
		message string
	}{
		{name: "missing email", body: `{}`, message: "email is required"},
		{name: "invalid email", body: `{"email": "not-an-email"}`, message: "email must be a valid email address"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, "/api/users", tc.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			body := decode[utils.APIResponse](t, w)
			assert.Equal(t, "error", body.Status)
			assert.Equal(t, tc.message, body.Message)
		})
	}

	w := do(t, r, http.MethodPost, "/api/users", `{"email": `)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[utils.APIResponse](t, w).Message, "Invalid request format")
}

func TestSurveyLifecycle(t *testing.T) {
	r := newTestRouter(t, &fakeGateway{})

	w := do(t, r, http.MethodPost, "/api/surveys", surveyBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := decode[domain_models.Survey](t, w)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, int64(1), created.UserID)
	require.Len(t, created.Questions, 2)
	assert.Equal(t, []string{"Yes", "No"}, created.Questions[0].Options)

	w = do(t, r, http.MethodGet, "/api/surveys/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[domain_models.Survey](t, w)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.Questions, got.Questions)

	w = do(t, r, http.MethodGet, "/api/users/1/surveys", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain_models.Survey](t, w), 1)

	w = do(t, r, http.MethodGet, "/api/users/2/surveys", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/surveys/999", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Survey not found", decode[utils.APIResponse](t, w).Message)
}

func TestCreateSurveyValidation(t *testing.T) {
	r := newTestRouter(t, &fakeGateway{})

	cases := []struct {
		name    string
		body    string
		message string
	}{
		{name: "missing title", body: `{"userId": 1, "questions": []}`, message: "title is required"},
		{name: "blank title", body: `{"title": "  ", "userId": 1, "questions": []}`, message: "title must not be blank"},
		{name: "missing questions", body: `{"title": "T", "userId": 1}`, message: "questions is required"},
		{name: "missing user", body: `{"title": "T", "questions": []}`, message: "userId is required"},
		{name: "questions not an array", body: `{"title": "T", "userId": 1, "questions": {"id": 1}}`, message: "Invalid request format"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, "/api/surveys", tc.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.Contains(t, decode[utils.APIResponse](t, w).Message, tc.message)
		})
	}
}

func TestCreateSurvey_StoresQuestionsAsGiven(t *testing.T) {
	r := newTestRouter(t, &fakeGateway{})

	w := do(t, r, http.MethodPost, "/api/surveys", `{"title": "Commute", "userId": 1, "questions": [
		{"id": 1, "text": "How calm is your commute?", "type": "scale"},
		{"id": 2, "text": "Favourite line?", "type": "multiple_choice"},
		{"id": "q3", "text": "", "type": "text"}
	]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := decode[domain_models.Survey](t, w)
	require.Len(t, created.Questions, 3)
	assert.Equal(t, domain_models.QuestionType("scale"), created.Questions[0].Type)
	assert.Nil(t, created.Questions[1].Options)
	assert.Zero(t, created.Questions[2].ID)

	w = do(t, r, http.MethodGet, "/api/surveys/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created.Questions, decode[domain_models.Survey](t, w).Questions)
}

func TestResponseRoutes(t *testing.T) {
	r := newTestRouter(t, &fakeGateway{})
	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/api/surveys", surveyBody).Code)

	w := do(t, r, http.MethodPost, "/api/surveys/1/responses",
		`{"surveyId": 1, "answers": [{"questionId": 1, "value": "Yes"}, {"questionId": 2, "value": 4}]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := decode[domain_models.Response](t, w)
	assert.Equal(t, int64(1), created.ID)

	w = do(t, r, http.MethodGet, "/api/surveys/1/responses", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"questionId": 1, "value": "Yes"}, {"questionId": 2, "value": 4}]`,
		string(mustMarshal(t, decode[[]domain_models.Response](t, w)[0].Answers)))

	w = do(t, r, http.MethodGet, "/api/surveys/2/responses", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCreateResponseValidation(t *testing.T) {
	r := newTestRouter(t, &fakeGateway{})

	cases := []struct {
		name    string
		body    string
		message string
	}{
		{name: "mismatched survey", body: `{"surveyId": 2, "answers": []}`, message: "surveyId does not match the survey in the path"},
		{name: "missing answers", body: `{"surveyId": 1}`, message: "answers is required"},
		{name: "missing question id", body: `{"surveyId": 1, "answers": [{"value": "x"}]}`, message: "answers[0].questionId is required"},
		{name: "missing value", body: `{"surveyId": 1, "answers": [{"questionId": 1}]}`, message: "answers[0].value is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, "/api/surveys/1/responses", tc.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.Equal(t, tc.message, decode[utils.APIResponse](t, w).Message)
		})
	}

	w := do(t, r, http.MethodPost, "/api/surveys/1/responses", `{"surveyId": 1, "answers": [{"questionId": 1, "value": true}]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateQuestionsRoute(t *testing.T) {
	gw := &fakeGateway{questions: []domain_models.Question{
		{ID: 1, Text: "A", Type: domain_models.QuestionTypeText},
		{ID: 2, Text: "B", Type: domain_models.QuestionTypeRating},
		{ID: 3, Text: "C", Type: domain_models.QuestionTypeMultipleChoice, Options: []string{"x", "y"}},
	}}
	r := newTestRouter(t, gw)

	w := do(t, r, http.MethodPost, "/api/ai/generate-questions", `{"topic": "coffee"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Len(t, decode[[]domain_models.Question](t, w), 3)
	assert.Equal(t, request_models.DefaultNumQuestions, gw.lastInput.NumQuestions)
	assert.Equal(t, domain_models.AllQuestionTypes, gw.lastInput.Types)

	w = do(t, r, http.MethodPost, "/api/ai/generate-questions", `{"topic": "coffee", "numQuestions": 3, "types": ["text"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, gw.lastInput.NumQuestions)
	assert.Equal(t, []domain_models.QuestionType{domain_models.QuestionTypeText}, gw.lastInput.Types)

	w = do(t, r, http.MethodPost, "/api/ai/generate-questions", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "topic is required", decode[utils.APIResponse](t, w).Message)

	w = do(t, r, http.MethodPost, "/api/ai/generate-questions", `{"topic": "coffee", "numQuestions": 0}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "numQuestions must be at least 1", decode[utils.APIResponse](t, w).Message)
}

func TestGatewayFailuresAre500(t *testing.T) {
	r := newTestRouter(t, &fakeGateway{err: utils.ErrGeneration})

	w := do(t, r, http.MethodPost, "/api/ai/generate-questions", `{"topic": "coffee"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "failed to generate survey questions", decode[utils.APIResponse](t, w).Message)

	r = newTestRouter(t, &fakeGateway{err: utils.ErrAnalysis})
	w = do(t, r, http.MethodPost, "/api/ai/analyze-responses", `{"responses": []}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "failed to analyze survey responses", decode[utils.APIResponse](t, w).Message)
}

func TestAnalyzeResponsesRoute(t *testing.T) {
	summary := &domain_models.AnalysisSummary{
		Sentiment:       domain_models.Sentiment{Positive: 2, Neutral: 1},
		Trends:          []string{"short lunches"},
		Recommendations: []string{"order earlier"},
	}
	r := newTestRouter(t, &fakeGateway{summary: summary})

	w := do(t, r, http.MethodPost, "/api/ai/analyze-responses",
		`{"responses": [{"id": 1, "surveyId": 1, "answers": [{"questionId": 1, "value": "ok"}], "createdAt": "2024-01-01T00:00:00Z"}]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, *summary, decode[domain_models.AnalysisSummary](t, w))

	w = do(t, r, http.MethodPost, "/api/ai/analyze-responses", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "responses is required", decode[utils.APIResponse](t, w).Message)
}

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}
