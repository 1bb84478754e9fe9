package request_models

import (
	"fmt"
	"strings"

	"github.com/zrohdes/ai-survey-platform/internal/models/domain_models"
)

type CreateSurveyRequest struct {
	Title       string                   `json:"title" binding:"required"`
	Description *string                  `json:"description"`
	UserID      int64                    `json:"userId" binding:"required,min=1"`
	Questions   []domain_models.Question `json:"questions" binding:"required"`
}

func (r *CreateSurveyRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("title must not be blank")
	}
	return nil
}

// ToNewSurvey keeps questions exactly as sent. Their contents are not checked.
func (r *CreateSurveyRequest) ToNewSurvey() domain_models.NewSurvey {
	return domain_models.NewSurvey{
		Title:       r.Title,
		Description: r.Description,
		UserID:      r.UserID,
		Questions:   r.Questions,
	}
}
