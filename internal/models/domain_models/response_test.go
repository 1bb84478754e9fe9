package domain_models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerValue_KeepsJSONKind(t *testing.T) {
	var answers []Answer
	require.NoError(t, json.Unmarshal([]byte(`[{"questionId": 1, "value": "4"}, {"questionId": 2, "value": 4.5}]`), &answers))

	assert.False(t, answers[0].Value.IsNumber())
	assert.Equal(t, "4", answers[0].Value.Text())
	assert.True(t, answers[1].Value.IsNumber())
	assert.Equal(t, 4.5, answers[1].Value.Number())
	assert.Equal(t, "4.5", answers[1].Value.String())

	out, err := json.Marshal(answers)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"questionId": 1, "value": "4"}, {"questionId": 2, "value": 4.5}]`, string(out))
}

func TestAnswerValue_RejectsOtherKinds(t *testing.T) {
	for _, raw := range []string{`true`, `null`, `{"a": 1}`, `["x"]`} {
		var v AnswerValue
		err := json.Unmarshal([]byte(raw), &v)
		assert.ErrorIs(t, err, ErrInvalidAnswerValue, raw)
		assert.False(t, v.IsSet())
	}
}

func TestAnswerValue_MissingIsUnset(t *testing.T) {
	var a Answer
	require.NoError(t, json.Unmarshal([]byte(`{"questionId": 3}`), &a))
	assert.False(t, a.Value.IsSet())
}

func TestSurveyClone(t *testing.T) {
	desc := "d"
	s := Survey{Description: &desc, Questions: []Question{{ID: 1, Options: []string{"a"}}}}
	c := s.Clone()
	*c.Description = "changed"
	c.Questions[0].Options[0] = "z"

	assert.Equal(t, "d", *s.Description)
	assert.Equal(t, "a", s.Questions[0].Options[0])
}
