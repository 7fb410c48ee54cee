package evaluator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasSubstance(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "empty", text: "", want: false},
		{name: "short", text: "ok", want: false},
		{name: "49 characters", text: strings.Repeat("a", 49), want: false},
		{name: "exactly 50 characters", text: strings.Repeat("a", 50), want: true},
		{name: "surrounding whitespace is trimmed", text: "   " + strings.Repeat("a", 49) + "\n\t ", want: false},
		{name: "multi-byte characters count once", text: strings.Repeat("é", 50), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasSubstance(tt.text))
		})
	}
}

func TestHasStructure(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "empty", text: "", want: false},
		{name: "plain sentence", text: "Write a poem about the sea", want: false},
		{name: "newline", text: "first line\nsecond line", want: true},
		{name: "colon", text: "Role: analyst", want: true},
		{name: "leading dash list", text: "- one item", want: true},
		{name: "indented dash list", text: "  - one item", want: true},
		{name: "hyphenated word is not a list", text: "a well-known fact", want: false},
		{name: "dash without space is not a list", text: "-flag", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasStructure(tt.text))
		})
	}
}
