package evaluator

// Exercise is the subset of a catalog exercise the engine works with.
// Only Criteria influences evaluation; the other fields travel along for display.
type Exercise struct {
	ID         string   `json:"id"`
	Prompt     string   `json:"prompt"`
	Criteria   []string `json:"criteria"`
	Difficulty string   `json:"difficulty,omitempty"`
	Hints      []string `json:"hints,omitempty"`
	Solution   string   `json:"solution,omitempty"`
}

// Signals records the three inputs that decide a criterion verdict.
type Signals struct {
	Keyword   bool `json:"keyword"`
	Substance bool `json:"substance"`
	Structure bool `json:"structure"`
}

// CriterionResult is the verdict for a single criterion.
type CriterionResult struct {
	Criterion       string   `json:"criterion"`
	Passed          bool     `json:"passed"`
	MatchedKeywords []string `json:"matched_keywords"`
	Feedback        string   `json:"feedback"`
	Signals         Signals  `json:"signals"`
}

// EvaluationResult aggregates the verdicts of every criterion of an exercise.
// PerCriterion keeps the input order of the criteria.
type EvaluationResult struct {
	PerCriterion []CriterionResult `json:"per_criterion"`
	PassedCount  int               `json:"passed_count"`
	TotalCount   int               `json:"total_count"`
	OverallScore float64           `json:"overall_score"`
	Suggestions  []string          `json:"suggestions"`
}

// Result returns the verdict recorded for criterion.
func (r *EvaluationResult) Result(criterion string) (CriterionResult, bool) {
	for _, cr := range r.PerCriterion {
		if cr.Criterion == criterion {
			return cr, true
		}
	}
	return CriterionResult{}, false
}

// Passed reports whether every criterion passed. An exercise without criteria never passes.
func (r *EvaluationResult) Passed() bool {
	return r.TotalCount > 0 && r.PassedCount == r.TotalCount
}
