package evaluator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const structuredAnswer = "Role: You are a senior financial analyst.\n" +
	"Context: quarterly budgets for a retail chain.\n" +
	"- Task: summarize the specific cost drivers in three bullet points."

func TestEvaluateCriterionPasses(t *testing.T) {
	result := EvaluateCriterion("Defines a specific role", structuredAnswer)

	assert.True(t, result.Passed)
	assert.Equal(t, "Defines a specific role", result.Criterion)
	assert.Equal(t, []string{"specific", "role"}, result.MatchedKeywords)
	assert.Equal(t, Signals{Keyword: true, Substance: true, Structure: true}, result.Signals)
	assert.Equal(t, "Found expected terms: specific, role.", result.Feedback)
}

func TestEvaluateCriterionNoKeywordOverlap(t *testing.T) {
	// Long enough and structured, but none of "defines", "specific", "role" occurs.
	text := "You are a senior analyst.\n- Context: budgets.\n- Task: summarize."

	result := EvaluateCriterion("Defines a specific role", text)

	assert.False(t, result.Passed)
	assert.Empty(t, result.MatchedKeywords)
	assert.Equal(t, Signals{Keyword: false, Substance: true, Structure: true}, result.Signals)
	assert.Equal(t, "Answer is missing expected terminology (expected one of: defines, specific, role).", result.Feedback)
}

func TestEvaluateCriterionAllSignalsFail(t *testing.T) {
	for _, text := range []string{"", "ok"} {
		result := EvaluateCriterion("Defines a specific role", text)

		assert.False(t, result.Passed)
		assert.Equal(t, Signals{}, result.Signals)
		assert.Equal(t,
			"Answer is too short (at least 50 characters needed); "+
				"lacks structure (use line breaks, colons or a dash list); "+
				"is missing expected terminology (expected one of: defines, specific, role).",
			result.Feedback)
	}
}

func TestEvaluateCriterionKeywordStuffing(t *testing.T) {
	// One long unstructured run-on sentence full of keywords.
	text := strings.Repeat("specific role ", 10)

	result := EvaluateCriterion("Defines a specific role", text)

	assert.False(t, result.Passed)
	assert.True(t, result.Signals.Keyword)
	assert.True(t, result.Signals.Substance)
	assert.False(t, result.Signals.Structure)
	assert.Equal(t, "Answer lacks structure (use line breaks, colons or a dash list).", result.Feedback)
}

func TestEvaluateCriterionWithoutKeywords(t *testing.T) {
	t.Run("long and structured passes", func(t *testing.T) {
		result := EvaluateCriterion("Is it ok", structuredAnswer)

		assert.True(t, result.Passed)
		assert.True(t, result.Signals.Keyword)
		assert.Empty(t, result.MatchedKeywords)
		assert.Equal(t, "Meets the length and structure requirements.", result.Feedback)
	})

	t.Run("short but structured fails on substance only", func(t *testing.T) {
		result := EvaluateCriterion("Is it ok", "Role: analyst")

		assert.False(t, result.Passed)
		assert.Equal(t, Signals{Keyword: true, Substance: false, Structure: true}, result.Signals)
		assert.Equal(t, "Answer is too short (at least 50 characters needed).", result.Feedback)
	})

	t.Run("long but unstructured fails on structure only", func(t *testing.T) {
		result := EvaluateCriterion("Is it ok", strings.Repeat("word ", 12))

		assert.False(t, result.Passed)
		assert.Equal(t, Signals{Keyword: true, Substance: true, Structure: false}, result.Signals)
	})
}
