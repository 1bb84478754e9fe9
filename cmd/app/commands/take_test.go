package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zrohdes/ai-survey-platform/internal/models/domain_models"
	"github.com/zrohdes/ai-survey-platform/internal/wizard"
)

func testSurvey() *domain_models.Survey {
	return &domain_models.Survey{
		ID:    1,
		Title: "Coffee",
		Questions: []domain_models.Question{
			{ID: 1, Text: "Favourite drink?", Type: domain_models.QuestionTypeMultipleChoice, Options: []string{"Espresso", "Latte"}},
			{ID: 2, Text: "Rate the beans", Type: domain_models.QuestionTypeRating},
			{ID: 3, Text: "Anything else?", Type: domain_models.QuestionTypeText},
		},
	}
}

func TestRunWizard(t *testing.T) {
	in := strings.NewReader("2\n9\n4\nMore oat milk\n")
	var out bytes.Buffer

	answers, err := runWizard(in, &out, testSurvey(), wizard.AppendAnswers)
	require.NoError(t, err)
	require.Len(t, answers, 3)
	assert.Equal(t, "Latte", answers[0].Value.Text())
	assert.Equal(t, float64(4), answers[1].Value.Number())
	assert.Equal(t, "More oat milk", answers[2].Value.Text())
	assert.Contains(t, out.String(), "rate from 1 to 5")
	assert.Contains(t, out.String(), "Question 3 of 3")
}

func TestRunWizard_BackAndPolicies(t *testing.T) {
	input := "espresso\nb\nlatte\n3\nfine\n"

	appended, err := runWizard(strings.NewReader(input), &bytes.Buffer{}, testSurvey(), wizard.AppendAnswers)
	require.NoError(t, err)
	assert.Len(t, appended, 4)
	assert.Equal(t, "Espresso", appended[0].Value.Text())

	overwritten, err := runWizard(strings.NewReader(input), &bytes.Buffer{}, testSurvey(), wizard.OverwriteAnswers)
	require.NoError(t, err)
	require.Len(t, overwritten, 3)
	assert.Equal(t, "Latte", overwritten[0].Value.Text())
}

func TestRunWizard_SubmitWithoutLastAnswer(t *testing.T) {
	answers, err := runWizard(strings.NewReader("1\n5\ns\n"), &bytes.Buffer{}, testSurvey(), wizard.AppendAnswers)
	require.NoError(t, err)
	assert.Len(t, answers, 2)
}

func TestRunWizard_InputClosed(t *testing.T) {
	_, err := runWizard(strings.NewReader("1\n"), &bytes.Buffer{}, testSurvey(), wizard.AppendAnswers)
	assert.ErrorIs(t, err, errInputClosed)
}

func TestParseAnswer(t *testing.T) {
	survey := testSurvey()
	choice, rating, text := survey.Questions[0], survey.Questions[1], survey.Questions[2]

	v, err := parseAnswer(choice, "1")
	require.NoError(t, err)
	assert.Equal(t, "Espresso", v.Text())

	_, err = parseAnswer(choice, "3")
	assert.ErrorContains(t, err, "between 1 and 2")

	_, err = parseAnswer(choice, "tea")
	assert.Error(t, err)

	v, err = parseAnswer(rating, "5")
	require.NoError(t, err)
	assert.True(t, v.IsNumber())

	_, err = parseAnswer(rating, "0")
	assert.Error(t, err)

	v, err = parseAnswer(text, "s")
	require.NoError(t, err, "s is only a command on the last question")
	assert.Equal(t, "s", v.Text())

	_, err = parseAnswer(text, "")
	assert.Error(t, err)

	v, err = parseAnswer(domain_models.Question{Type: domain_models.QuestionTypeMultipleChoice}, "cold brew")
	require.NoError(t, err, "a choice question without options takes free text")
	assert.Equal(t, "cold brew", v.Text())

	v, err = parseAnswer(domain_models.Question{Type: "scale"}, "7")
	require.NoError(t, err)
	assert.Equal(t, "7", v.Text())
}
