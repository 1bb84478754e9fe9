package domain_models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"time"
)

var ErrInvalidAnswerValue = errors.New("answer value must be a string or a number")

// AnswerValue is either a string or a number and round-trips to the JSON kind it was read from.
type AnswerValue struct {
	text     string
	number   float64
	isNumber bool
	set      bool
}

func TextValue(s string) AnswerValue {
	return AnswerValue{text: s, set: true}
}

func NumberValue(n float64) AnswerValue {
	return AnswerValue{number: n, isNumber: true, set: true}
}

func (v AnswerValue) IsNumber() bool { return v.isNumber }

// IsSet reports whether the value was explicitly provided.
func (v AnswerValue) IsSet() bool { return v.set }

func (v AnswerValue) Text() string { return v.text }

func (v AnswerValue) Number() float64 { return v.number }

func (v AnswerValue) String() string {
	if v.isNumber {
		return strconv.FormatFloat(v.number, 'f', -1, 64)
	}
	return v.text
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	if v.isNumber {
		return json.Marshal(v.number)
	}
	return json.Marshal(v.text)
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ErrInvalidAnswerValue
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = TextValue(s)
		return nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*v = NumberValue(n)
		return nil
	}
	return ErrInvalidAnswerValue
}

type Answer struct {
	QuestionID int64       `json:"questionId"`
	Value      AnswerValue `json:"value"`
}

type Response struct {
	ID        int64     `json:"id"`
	SurveyID  int64     `json:"surveyId"`
	Answers   []Answer  `json:"answers"`
	CreatedAt time.Time `json:"createdAt"`
}

type NewResponse struct {
	SurveyID int64
	Answers  []Answer
}

func (r Response) Clone() Response {
	out := r
	out.Answers = append([]Answer{}, r.Answers...)
	return out
}
