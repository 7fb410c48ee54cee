package evaluator

import (
	"fmt"
	"math"
)

// EvaluateExercise evaluates text against every criterion of ex, in order.
//
// The result holds one CriterionResult per criterion, the number of passed
// criteria, a 0-100 score (round(100 * passed / total), 0 when there are no
// criteria) and one suggestion per failed criterion. The function has no side
// effects and is safe for concurrent use.
func EvaluateExercise(ex *Exercise, text string) (*EvaluationResult, error) {
	if ex == nil {
		return nil, &InvalidInputError{Field: "exercise", Reason: "must not be nil"}
	}
	if err := checkDistinct(ex.Criteria); err != nil {
		return nil, err
	}

	result := &EvaluationResult{
		PerCriterion: make([]CriterionResult, 0, len(ex.Criteria)),
		TotalCount:   len(ex.Criteria),
		Suggestions:  []string{},
	}

	for _, criterion := range ex.Criteria {
		cr := EvaluateCriterion(criterion, text)
		result.PerCriterion = append(result.PerCriterion, cr)

		if cr.Passed {
			result.PassedCount++
			continue
		}
		result.Suggestions = append(result.Suggestions, suggestion(cr))
	}

	result.OverallScore = score(result.PassedCount, result.TotalCount)

	return result, nil
}

func score(passed, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(100 * float64(passed) / float64(total))
}

func checkDistinct(criteria []string) error {
	seen := make(map[string]bool, len(criteria))
	for i, c := range criteria {
		if seen[c] {
			return &InvalidInputError{
				Field:  fmt.Sprintf("criteria[%d]", i),
				Reason: fmt.Sprintf("duplicates criterion %q", c),
			}
		}
		seen[c] = true
	}
	return nil
}
