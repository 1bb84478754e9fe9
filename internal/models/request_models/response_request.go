package request_models

import (
	"fmt"

	"github.com/zrohdes/ai-survey-platform/internal/models/domain_models"
)

type AnswerPayload struct {
	QuestionID *int64                    `json:"questionId" binding:"required"`
	Value      domain_models.AnswerValue `json:"value"`
}

type CreateResponseRequest struct {
	SurveyID int64           `json:"surveyId" binding:"required,min=1"`
	Answers  []AnswerPayload `json:"answers" binding:"required,dive"`
}

func (r *CreateResponseRequest) Validate() error {
	for i, a := range r.Answers {
		if !a.Value.IsSet() {
			return fmt.Errorf("answers[%d].value is required", i)
		}
	}
	return nil
}

func (r *CreateResponseRequest) ToNewResponse() domain_models.NewResponse {
	answers := make([]domain_models.Answer, 0, len(r.Answers))
	for _, a := range r.Answers {
		answers = append(answers, domain_models.Answer{QuestionID: *a.QuestionID, Value: a.Value})
	}
	return domain_models.NewResponse{SurveyID: r.SurveyID, Answers: answers}
}
