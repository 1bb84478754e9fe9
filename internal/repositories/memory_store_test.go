package repositories

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zrohdes/ai-survey-platform/internal/models/domain_models"
)

func sampleQuestions() []domain_models.Question {
	return []domain_models.Question{
		{ID: 1, Text: "How satisfied are you?", Type: domain_models.QuestionTypeRating},
		{ID: 2, Text: "Pick one", Type: domain_models.QuestionTypeMultipleChoice, Options: []string{"A", "B"}},
		{ID: 3, Text: "Anything else?", Type: domain_models.QuestionTypeText},
	}
}

func TestMemoryStore_IDsStartAtOneAndIncrease(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	first, err := store.CreateUser(ctx, "a@x.com")
	require.NoError(t, err)
	second, err := store.CreateUser(ctx, "b@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	survey, err := store.CreateSurvey(ctx, domain_models.NewSurvey{Title: "S", UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), survey.ID)

	response, err := store.CreateResponse(ctx, domain_models.NewResponse{SurveyID: survey.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), response.ID)
}

func TestMemoryStore_CreateThenGetSurveyRoundTrips(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	desc := "quarterly pulse"
	created, err := store.CreateSurvey(ctx, domain_models.NewSurvey{
		Title:       "Pulse",
		Description: &desc,
		UserID:      7,
		Questions:   sampleQuestions(),
	})
	require.NoError(t, err)
	assert.Equal(t, fixed, created.CreatedAt)

	got, err := store.GetSurvey(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *created, *got)
	assert.Equal(t, "Pulse", got.Title)
	assert.Equal(t, "quarterly pulse", *got.Description)
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, sampleQuestions(), got.Questions)
}

func TestMemoryStore_ReturnedValuesAreCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	in := sampleQuestions()
	created, err := store.CreateSurvey(ctx, domain_models.NewSurvey{Title: "S", UserID: 1, Questions: in})
	require.NoError(t, err)

	in[0].Text = "mutated input"
	created.Questions[1].Options[0] = "mutated output"

	got, err := store.GetSurvey(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "How satisfied are you?", got.Questions[0].Text)
	assert.Equal(t, "A", got.Questions[1].Options[0])
}

func TestMemoryStore_MissingLookupsReturnNil(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	user, err := store.GetUser(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, user)

	byEmail, err := store.GetUserByEmail(ctx, "nobody@x.com")
	require.NoError(t, err)
	assert.Nil(t, byEmail)

	survey, err := store.GetSurvey(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, survey)
}

func TestMemoryStore_ListsAreEmptyNotNil(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	surveys, err := store.GetSurveysByUser(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, surveys)
	assert.Empty(t, surveys)

	responses, err := store.GetResponsesBySurvey(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, responses)
	assert.Empty(t, responses)
}

func TestMemoryStore_GetSurveysByUserFiltersInCreationOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	for i, owner := range []int64{1, 2, 1, 1} {
		_, err := store.CreateSurvey(ctx, domain_models.NewSurvey{Title: fmt.Sprintf("S%d", i+1), UserID: owner})
		require.NoError(t, err)
	}

	surveys, err := store.GetSurveysByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, surveys, 3)
	assert.Equal(t, []string{"S1", "S3", "S4"}, []string{surveys[0].Title, surveys[1].Title, surveys[2].Title})
	for _, s := range surveys {
		assert.Equal(t, int64(1), s.UserID)
	}
}

func TestMemoryStore_ResponsesBySurvey(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.CreateResponse(ctx, domain_models.NewResponse{
		SurveyID: 1,
		Answers:  []domain_models.Answer{{QuestionID: 1, Value: domain_models.TextValue("Yes")}},
	})
	require.NoError(t, err)
	_, err = store.CreateResponse(ctx, domain_models.NewResponse{SurveyID: 2})
	require.NoError(t, err)

	responses, err := store.GetResponsesBySurvey(ctx, 1)
	require.NoError(t, err)
	require.Len(t, responses, 1)
	require.Len(t, responses[0].Answers, 1)
	assert.Equal(t, int64(1), responses[0].Answers[0].QuestionID)
	assert.Equal(t, "Yes", responses[0].Answers[0].Value.Text())
}

func TestMemoryStore_DoesNotEnforceUniqueEmailOrReferences(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	first, err := store.CreateUser(ctx, "dup@x.com")
	require.NoError(t, err)
	second, err := store.CreateUser(ctx, "dup@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	found, err := store.GetUserByEmail(ctx, "dup@x.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	orphan, err := store.CreateSurvey(ctx, domain_models.NewSurvey{Title: "orphan", UserID: 404})
	require.NoError(t, err)
	assert.Equal(t, int64(404), orphan.UserID)
}

func TestMemoryStore_ConcurrentCreatesGetDistinctIDs(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	const n = 50
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := store.CreateSurvey(ctx, domain_models.NewSurvey{Title: "S", UserID: 1})
			if err == nil {
				ids <- s.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)

	surveys, err := store.GetSurveysByUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, surveys, n)
}
