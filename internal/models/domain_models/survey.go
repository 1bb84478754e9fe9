package domain_models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"time"
)

type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeText           QuestionType = "text"
	QuestionTypeRating         QuestionType = "rating"
)

// AllQuestionTypes is the default type mix offered to the generator.
var AllQuestionTypes = []QuestionType{
	QuestionTypeMultipleChoice,
	QuestionTypeText,
	QuestionTypeRating,
}

// Question is stored verbatim inside its Survey. ID is only unique within the survey.
type Question struct {
	ID      int64        `json:"id"`
	Text    string       `json:"text"`
	Type    QuestionType `json:"type"`
	Options []string     `json:"options,omitempty"`
}

// UnmarshalJSON decodes a question without rejecting odd ids. Ids that are neither whole
// numbers nor strings holding one decode as 0. Callers that key answers by id renumber
// such questions with NumberQuestions.
func (q *Question) UnmarshalJSON(data []byte) error {
	type plain Question
	var aux struct {
		plain
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*q = Question(aux.plain)
	q.ID = parseQuestionID(aux.ID)
	return nil
}

func parseQuestionID(raw json.RawMessage) int64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0
	}
	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0
		}
	}
	if id, err := strconv.ParseInt(text, 10, 64); err == nil {
		return id
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt64/2 {
		return 0
	}
	return int64(f)
}

// NumberQuestions gives every question its 1-based position as id when any id is missing,
// non-positive or repeated. Well-formed lists come back unchanged.
func NumberQuestions(questions []Question) []Question {
	seen := make(map[int64]bool, len(questions))
	valid := true
	for _, q := range questions {
		if q.ID < 1 || seen[q.ID] {
			valid = false
			break
		}
		seen[q.ID] = true
	}
	if valid {
		return questions
	}
	for i := range questions {
		questions[i].ID = int64(i + 1)
	}
	return questions
}

type Survey struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	UserID      int64      `json:"userId"`
	Questions   []Question `json:"questions"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// NewSurvey carries the caller-supplied fields of a survey before an id is assigned.
type NewSurvey struct {
	Title       string
	Description *string
	UserID      int64
	Questions   []Question
}

// Clone returns a deep copy so stored surveys cannot be mutated through returned values.
func (s Survey) Clone() Survey {
	out := s
	if s.Description != nil {
		d := *s.Description
		out.Description = &d
	}
	out.Questions = make([]Question, len(s.Questions))
	for i, q := range s.Questions {
		out.Questions[i] = q
		if q.Options != nil {
			out.Questions[i].Options = append([]string(nil), q.Options...)
		}
	}
	return out
}
