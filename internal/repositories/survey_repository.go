package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/zrohdes/ai-survey-platform/internal/models/db_models"
	"github.com/zrohdes/ai-survey-platform/internal/models/domain_models"
)

type surveyRepository struct {
	db *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) SurveyRepository {
	return &surveyRepository{db: db}
}

func (s *surveyRepository) CreateSurvey(ctx context.Context, in domain_models.NewSurvey) (*domain_models.Survey, error) {
	questions := in.Questions
	if questions == nil {
		questions = []domain_models.Question{}
	}
	raw, err := json.Marshal(questions)
	if err != nil {
		return nil, fmt.Errorf("encode questions: %w", err)
	}

	row := db_models.Survey{
		Title:       in.Title,
		Description: in.Description,
		UserID:      in.UserID,
		Questions:   datatypes.JSON(raw),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return toSurvey(row)
}

func (s *surveyRepository) GetSurvey(ctx context.Context, id int64) (*domain_models.Survey, error) {
	var row db_models.Survey
	err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toSurvey(row)
}

func (s *surveyRepository) GetSurveysByUser(ctx context.Context, userID int64) ([]domain_models.Survey, error) {
	var rows []db_models.Survey
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]domain_models.Survey, 0, len(rows))
	for _, row := range rows {
		survey, err := toSurvey(row)
		if err != nil {
			return nil, err
		}
		result = append(result, *survey)
	}
	return result, nil
}

func toSurvey(row db_models.Survey) (*domain_models.Survey, error) {
	questions := make([]domain_models.Question, 0)
	if len(row.Questions) > 0 {
		if err := json.Unmarshal(row.Questions, &questions); err != nil {
			return nil, fmt.Errorf("decode questions of survey %d: %w", row.ID, err)
		}
	}
	return &domain_models.Survey{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		UserID:      row.UserID,
		Questions:   questions,
		CreatedAt:   row.CreatedAt,
	}, nil
}
