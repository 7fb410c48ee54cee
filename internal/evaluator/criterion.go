package evaluator

import (
	"fmt"
	"strings"
)

const (
	issueTooShort      = "is too short (at least %d characters needed)"
	issueNoStructure   = "lacks structure (use line breaks, colons or a dash list)"
	issueNoTerminology = "is missing expected terminology (expected one of: %s)"
)

// EvaluateCriterion decides whether text satisfies a single criterion.
//
// A criterion passes only when all three signals hold:
//   - keyword: at least one criterion keyword occurs in the text, or the
//     criterion has no keywords at all (vacuously true);
//   - substance: the text is long enough (HasSubstance);
//   - structure: the text is organised (HasStructure).
//
// Requiring all three keeps keyword stuffing, long off-topic answers and bare
// name-dropping from passing. Paraphrased answers that avoid the criterion's
// wording will fail; this is a lexical heuristic.
func EvaluateCriterion(criterion, text string) CriterionResult {
	keywords := ExtractKeywords(criterion)
	matched := FindMatches(keywords, text)

	signals := Signals{
		Keyword:   len(keywords) == 0 || len(matched) > 0,
		Substance: HasSubstance(text),
		Structure: HasStructure(text),
	}

	return CriterionResult{
		Criterion:       criterion,
		Passed:          signals.Keyword && signals.Substance && signals.Structure,
		MatchedKeywords: matched,
		Feedback:        feedback(signals, keywords, matched),
		Signals:         signals,
	}
}

func feedback(s Signals, keywords, matched []string) string {
	if s.Keyword && s.Substance && s.Structure {
		if len(matched) == 0 {
			return "Meets the length and structure requirements."
		}
		return fmt.Sprintf("Found expected terms: %s.", strings.Join(matched, ", "))
	}

	var issues []string
	if !s.Substance {
		issues = append(issues, fmt.Sprintf(issueTooShort, MinSubstanceLength))
	}
	if !s.Structure {
		issues = append(issues, issueNoStructure)
	}
	if !s.Keyword {
		issues = append(issues, fmt.Sprintf(issueNoTerminology, strings.Join(keywords, ", ")))
	}

	return "Answer " + strings.Join(issues, "; ") + "."
}

// suggestion turns a failed verdict into an improvement hint.
func suggestion(cr CriterionResult) string {
	if !cr.Signals.Keyword {
		return "Add specific keywords related to: " + cr.Criterion
	}
	return "Increase length/structure of your answer to address: " + cr.Criterion
}
