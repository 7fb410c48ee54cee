package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdess-gv/Techgrounds-AI-playground-sub000/internal/evaluator"
)

func scored(score float64, passed, total int) Result {
	return Result{Evaluation: &evaluator.EvaluationResult{
		OverallScore: score,
		PassedCount:  passed,
		TotalCount:   total,
	}}
}

func TestSummarize(t *testing.T) {
	summary := Summarize([]Result{
		scored(100, 2, 2),
		scored(50, 1, 2),
		scored(0, 0, 2),
	})

	assert.Equal(t, 3, summary.Evaluated)
	assert.Equal(t, 1, summary.FullyPassed)
	require.NotNil(t, summary.MeanScore)
	assert.Equal(t, 50.0, *summary.MeanScore)
	require.NotNil(t, summary.MinScore)
	assert.Equal(t, 0.0, *summary.MinScore)
	require.NotNil(t, summary.MaxScore)
	assert.Equal(t, 100.0, *summary.MaxScore)
	require.NotNil(t, summary.Variance)
	assert.Equal(t, 1666.67, *summary.Variance)
}

func TestSummarizeRounding(t *testing.T) {
	summary := Summarize([]Result{
		scored(67, 2, 3),
		scored(33, 1, 3),
		scored(100, 3, 3),
	})

	require.NotNil(t, summary.MeanScore)
	assert.Equal(t, 66.67, *summary.MeanScore)
	assert.Equal(t, 1, summary.FullyPassed)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, 0, summary.Evaluated)
	assert.Nil(t, summary.MeanScore)
	assert.Nil(t, summary.MinScore)
	assert.Nil(t, summary.MaxScore)
	assert.Nil(t, summary.Variance)
}

func TestSummarizeZeroCriteriaIsNotPassed(t *testing.T) {
	summary := Summarize([]Result{scored(0, 0, 0)})
	assert.Equal(t, 0, summary.FullyPassed)
}
