package evaluator

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinKeywordLength is the shortest token, in runes, that counts as a keyword.
// Short function words ("a", "of", "is") fall below it; there is no stop-word list.
const MinKeywordLength = 3

var nonWord = regexp.MustCompile(`[^A-Za-z0-9_]+`)

// ExtractKeywords returns the lower-cased tokens of criterion that are at least
// MinKeywordLength long, in left-to-right order with duplicates removed.
func ExtractKeywords(criterion string) []string {
	keywords := []string{}
	seen := make(map[string]bool)

	for _, token := range nonWord.Split(criterion, -1) {
		token = strings.ToLower(token)
		if utf8.RuneCountInString(token) < MinKeywordLength || seen[token] {
			continue
		}
		seen[token] = true
		keywords = append(keywords, token)
	}

	return keywords
}

// FindMatches returns the keywords that occur in text, ignoring case.
// Matches keep the keyword order and the keyword's own casing.
func FindMatches(keywords []string, text string) []string {
	matched := []string{}
	lowered := strings.ToLower(text)

	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(kw)) {
			matched = append(matched, kw)
		}
	}

	return matched
}
