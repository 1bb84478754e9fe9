package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/zrohdes/ai-survey-platform/internal/models/domain_models"
)

// MemoryStore keeps users, surveys and responses in process memory.
// Collections are append-only and ids come from per-collection counters starting at 1.
// Neither email uniqueness nor the userId/surveyId references are checked.
type MemoryStore struct {
	mu sync.RWMutex

	users     map[int64]domain_models.User
	surveys   map[int64]domain_models.Survey
	responses map[int64]domain_models.Response

	// insertion order, since map iteration is unordered
	surveyOrder   []int64
	responseOrder []int64
	userOrder     []int64

	nextUserID     int64
	nextSurveyID   int64
	nextResponseID int64

	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:          make(map[int64]domain_models.User),
		surveys:        make(map[int64]domain_models.Survey),
		responses:      make(map[int64]domain_models.Response),
		nextUserID:     1,
		nextSurveyID:   1,
		nextResponseID: 1,
		now:            time.Now,
	}
}

func (s *MemoryStore) CreateUser(ctx context.Context, email string) (*domain_models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := domain_models.User{
		ID:        s.nextUserID,
		Email:     email,
		CreatedAt: s.now(),
	}
	s.nextUserID++
	s.users[user.ID] = user
	s.userOrder = append(s.userOrder, user.ID)

	return &user, nil
}

func (s *MemoryStore) GetUser(ctx context.Context, id int64) (*domain_models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (s *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*domain_models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.userOrder {
		if user := s.users[id]; user.Email == email {
			return &user, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) CreateSurvey(ctx context.Context, in domain_models.NewSurvey) (*domain_models.Survey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	survey := domain_models.Survey{
		ID:          s.nextSurveyID,
		Title:       in.Title,
		Description: in.Description,
		UserID:      in.UserID,
		Questions:   in.Questions,
		CreatedAt:   s.now(),
	}
	if survey.Questions == nil {
		survey.Questions = []domain_models.Question{}
	}
	survey = survey.Clone()
	s.nextSurveyID++
	s.surveys[survey.ID] = survey
	s.surveyOrder = append(s.surveyOrder, survey.ID)

	out := survey.Clone()
	return &out, nil
}

func (s *MemoryStore) GetSurvey(ctx context.Context, id int64) (*domain_models.Survey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	survey, ok := s.surveys[id]
	if !ok {
		return nil, nil
	}
	out := survey.Clone()
	return &out, nil
}

func (s *MemoryStore) GetSurveysByUser(ctx context.Context, userID int64) ([]domain_models.Survey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain_models.Survey, 0)
	for _, id := range s.surveyOrder {
		if survey := s.surveys[id]; survey.UserID == userID {
			result = append(result, survey.Clone())
		}
	}
	return result, nil
}

func (s *MemoryStore) CreateResponse(ctx context.Context, in domain_models.NewResponse) (*domain_models.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	response := domain_models.Response{
		ID:        s.nextResponseID,
		SurveyID:  in.SurveyID,
		Answers:   in.Answers,
		CreatedAt: s.now(),
	}
	response = response.Clone()
	s.nextResponseID++
	s.responses[response.ID] = response
	s.responseOrder = append(s.responseOrder, response.ID)

	out := response.Clone()
	return &out, nil
}

func (s *MemoryStore) GetResponsesBySurvey(ctx context.Context, surveyID int64) ([]domain_models.Response, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain_models.Response, 0)
	for _, id := range s.responseOrder {
		if response := s.responses[id]; response.SurveyID == surveyID {
			result = append(result, response.Clone())
		}
	}
	return result, nil
}
