package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/zrohdes/ai-survey-platform/internal/models/db_models"
	"github.com/zrohdes/ai-survey-platform/internal/models/domain_models"
)

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) CreateResponse(ctx context.Context, in domain_models.NewResponse) (*domain_models.Response, error) {
	answers := in.Answers
	if answers == nil {
		answers = []domain_models.Answer{}
	}
	raw, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("encode answers: %w", err)
	}

	row := db_models.Response{
		SurveyID: in.SurveyID,
		Answers:  datatypes.JSON(raw),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return toResponse(row)
}

func (r *responseRepository) GetResponsesBySurvey(ctx context.Context, surveyID int64) ([]domain_models.Response, error) {
	var rows []db_models.Response
	err := r.db.WithContext(ctx).
		Where("survey_id = ?", surveyID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]domain_models.Response, 0, len(rows))
	for _, row := range rows {
		response, err := toResponse(row)
		if err != nil {
			return nil, err
		}
		result = append(result, *response)
	}
	return result, nil
}

func toResponse(row db_models.Response) (*domain_models.Response, error) {
	answers := make([]domain_models.Answer, 0)
	if len(row.Answers) > 0 {
		if err := json.Unmarshal(row.Answers, &answers); err != nil {
			return nil, fmt.Errorf("decode answers of response %d: %w", row.ID, err)
		}
	}
	return &domain_models.Response{
		ID:        row.ID,
		SurveyID:  row.SurveyID,
		Answers:   answers,
		CreatedAt: row.CreatedAt,
	}, nil
}
