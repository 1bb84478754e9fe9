package request_models

import (
	"fmt"
	"strings"

	"github.com/zrohdes/ai-survey-platform/internal/models/domain_models"
)

const (
	DefaultNumQuestions = 5
	MaxNumQuestions     = 50
)

type GenerateQuestionsRequest struct {
	Topic        string   `json:"topic" binding:"required"`
	NumQuestions *int     `json:"numQuestions" binding:"omitempty,min=1,max=50"`
	Types        []string `json:"types" binding:"omitempty,dive,oneof=multiple_choice text rating"`
}

func (r *GenerateQuestionsRequest) Validate() error {
	if strings.TrimSpace(r.Topic) == "" {
		return fmt.Errorf("topic must not be blank")
	}
	return nil
}

// ToInput applies the defaults: five questions mixing every question type.
func (r *GenerateQuestionsRequest) ToInput() GenerateQuestionsInput {
	in := GenerateQuestionsInput{Topic: r.Topic, NumQuestions: DefaultNumQuestions}
	if r.NumQuestions != nil {
		in.NumQuestions = *r.NumQuestions
	}
	for _, t := range r.Types {
		in.Types = append(in.Types, domain_models.QuestionType(t))
	}
	if len(in.Types) == 0 {
		in.Types = append(in.Types, domain_models.AllQuestionTypes...)
	}
	return in
}

type GenerateQuestionsInput struct {
	Topic        string
	NumQuestions int
	Types        []domain_models.QuestionType
}

type AnalyzeResponsesRequest struct {
	Responses []domain_models.Response `json:"responses" binding:"required"`
}
