package runner

import (
	"math"
	"slices"
)

// Summary holds aggregate statistics over the evaluated submissions of a run.
type Summary struct {
	Evaluated   int      `json:"evaluated"`
	FullyPassed int      `json:"fully_passed"`
	MeanScore   *float64 `json:"mean_score"`
	MinScore    *float64 `json:"min_score"`
	MaxScore    *float64 `json:"max_score"`
	Variance    *float64 `json:"variance"`
}

// Summarize computes aggregate statistics over a run's results. Scores are rounded
// to two decimals; the pointer fields stay nil when there are no results.
func Summarize(results []Result) Summary {
	summary := Summary{Evaluated: len(results)}
	if len(results) == 0 {
		return summary
	}

	scores := make([]float64, 0, len(results))
	for _, r := range results {
		scores = append(scores, r.Evaluation.OverallScore)
		if r.Evaluation.Passed() {
			summary.FullyPassed++
		}
	}

	mean := meanFloat(scores)
	minS := slices.Min(scores)
	maxS := slices.Max(scores)
	variance := varianceFloat(scores, mean)

	summary.MeanScore = &mean
	summary.MinScore = &minS
	summary.MaxScore = &maxS
	summary.Variance = &variance

	return summary
}

func meanFloat(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return math.Round(sum/float64(len(vals))*100) / 100
}

// varianceFloat calculates the population variance given a precomputed mean.
func varianceFloat(vals []float64, mean float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sumSquaredDiff := 0.0
	for _, v := range vals {
		diff := v - mean
		sumSquaredDiff += diff * diff
	}
	return math.Round(sumSquaredDiff/float64(len(vals))*100) / 100
}
