package llm

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiCompleter_SafetyOnlyForGeneration(t *testing.T) {
	completer, err := NewGeminiCompleter(context.Background(), "test-key", "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = completer.Close() })

	assert.Equal(t, "gemini-1.5-flash", completer.model)
	require.Len(t, completer.safety, 1)
	assert.Equal(t, genai.HarmCategoryHarassment, completer.safety[0].Category)
	assert.Equal(t, genai.HarmBlockMediumAndAbove, completer.safety[0].Threshold)

	analysis := completer.WithoutSafetySettings()
	assert.Empty(t, analysis.safety)
	assert.Same(t, completer.client, analysis.client)
	assert.Len(t, completer.safety, 1, "original keeps its settings")
}

func TestGeminiPrompts_HaveNoSystemInstruction(t *testing.T) {
	assert.Empty(t, GeminiPrompts.QuestionsSystem)
	assert.Empty(t, GeminiPrompts.AnalysisSystem)
	assert.NotEmpty(t, OpenAIPrompts.QuestionsSystem)
}
