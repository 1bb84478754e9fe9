package llm

import (
	"fmt"
	"strings"

	"github.com/zrohdes/ai-survey-platform/internal/models/domain_models"
	"github.com/zrohdes/ai-survey-platform/internal/models/request_models"
)

// PromptSet holds one backend's phrasing of the two gateway operations.
type PromptSet struct {
	QuestionsSystem string
	AnalysisSystem  string
	Questions       func(in request_models.GenerateQuestionsInput) string
	Analysis        func(responsesJSON string) string
}

func joinTypes(types []domain_models.QuestionType) string {
	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, ", ")
}

// OpenAIPrompts is tuned for JSON mode, which only yields objects, so the array is wrapped in "questions".
var OpenAIPrompts = PromptSet{
	QuestionsSystem: "You are a survey creation expert. Generate thoughtful survey questions based on the given topic.",
	AnalysisSystem:  "You are a data analysis expert. Analyze the survey responses and provide insights.",
	Questions: func(in request_models.GenerateQuestionsInput) string {
		return fmt.Sprintf(
			`Create %d survey questions about "%s". Mix different question types from: %s. `+
				`Format as a JSON object {"questions": [...]} where each question has fields: id, text, type, and options (for multiple choice).`,
			in.NumQuestions, in.Topic, joinTypes(in.Types))
	},
	Analysis: func(responsesJSON string) string {
		return fmt.Sprintf(
			`Analyze these survey responses and provide key insights: %s. `+
				`Return as JSON with sentiment (object with positive, neutral, negative counts), trends (array of strings), and recommendations (array of strings) fields.`,
			responsesJSON)
	},
}

// GeminiPrompts carry no system instruction; the user prompt asks for bare JSON itself.
var GeminiPrompts = PromptSet{
	Questions: func(in request_models.GenerateQuestionsInput) string {
		return fmt.Sprintf(
			`Create %d survey questions about "%s". Mix different question types from: %s. `+
				`Format as JSON array with fields: id, text, type, and options (for multiple choice). Return ONLY the JSON, no other text.`,
			in.NumQuestions, in.Topic, joinTypes(in.Types))
	},
	Analysis: func(responsesJSON string) string {
		return fmt.Sprintf(
			`Analyze these survey responses and provide insights: %s. `+
				`Return JSON with sentiment (object with positive, neutral, negative counts), trends (array of strings), and recommendations (array of strings). Return ONLY the JSON, no other text.`,
			responsesJSON)
	},
}
