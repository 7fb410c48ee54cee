package iframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnippet(t *testing.T) {
	got, err := Snippet(Options{
		BaseURL:    "https://playground.example.com/widget",
		ExerciseID: "role-prompting",
	})
	require.NoError(t, err)

	assert.Equal(t,
		`<iframe src="https://playground.example.com/widget?exercise=role-prompting&amp;lang=en" width="100%" height="600" title="Exercise role-prompting" loading="lazy" style="border:0"></iframe>`,
		got,
	)
}

func TestSnippetOptions(t *testing.T) {
	got, err := Snippet(Options{
		BaseURL:    "http://localhost:8080/embed?theme=dark",
		ExerciseID: "rol-toewijzen",
		Locale:     "nl",
		Width:      "800",
		Height:     "400",
	})
	require.NoError(t, err)

	assert.Contains(t, got, `src="http://localhost:8080/embed?exercise=rol-toewijzen&amp;lang=nl&amp;theme=dark"`)
	assert.Contains(t, got, `width="800"`)
	assert.Contains(t, got, `height="400"`)
}

func TestSnippetEscapesValues(t *testing.T) {
	got, err := Snippet(Options{
		BaseURL:    "https://example.com/w",
		ExerciseID: `x"><script>alert(1)</script>`,
		Height:     `1" onload="evil()`,
	})
	require.NoError(t, err)

	assert.NotContains(t, got, "<script>")
	assert.NotContains(t, got, `" onload="`)
	assert.Contains(t, got, "exercise=x%22%3E%3Cscript%3Ealert%281%29%3C%2Fscript%3E")
}

func TestSnippetErrors(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{
			name:    "missing exercise",
			opts:    Options{BaseURL: "https://example.com"},
			wantErr: "exercise id is required",
		},
		{
			name:    "relative base URL",
			opts:    Options{BaseURL: "/widget", ExerciseID: "a"},
			wantErr: "absolute http(s) URL",
		},
		{
			name:    "javascript scheme",
			opts:    Options{BaseURL: "javascript:alert(1)", ExerciseID: "a"},
			wantErr: "absolute http(s) URL",
		},
		{
			name:    "no host",
			opts:    Options{BaseURL: "https:///widget", ExerciseID: "a"},
			wantErr: "has no host",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Snippet(tt.opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
