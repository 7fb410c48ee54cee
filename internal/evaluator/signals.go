package evaluator

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinSubstanceLength is the minimum trimmed length, in runes, of a substantive answer.
const MinSubstanceLength = 50

var listMarker = regexp.MustCompile(`(?m)^[ \t]*-\s`)

// HasSubstance reports whether the trimmed text is at least MinSubstanceLength runes long.
func HasSubstance(text string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) >= MinSubstanceLength
}

// HasStructure reports whether the text shows any sign of organisation: a line
// break, a colon, or a hyphen list marker.
func HasStructure(text string) bool {
	if strings.ContainsAny(text, "\n:") {
		return true
	}
	return listMarker.MatchString(text)
}
