// Package iframe renders embed snippets for hosting an exercise widget on
// another page.
package iframe

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"strings"
)

const (
	DefaultLocale = "en"
	DefaultWidth  = "100%"
	DefaultHeight = "600"
)

// Options configures an embed snippet.
type Options struct {
	BaseURL    string
	ExerciseID string
	Locale     string
	Width      string
	Height     string
}

var snippetTmpl = template.Must(template.New("iframe").Parse(
	`<iframe src="{{.Src}}" width="{{.Width}}" height="{{.Height}}" title="{{.Title}}" loading="lazy" style="border:0"></iframe>`,
))

// Snippet returns an iframe tag that loads the exercise widget for opts.ExerciseID.
// The exercise id and locale are passed as the exercise and lang query parameters.
func Snippet(opts Options) (string, error) {
	if strings.TrimSpace(opts.ExerciseID) == "" {
		return "", fmt.Errorf("exercise id is required")
	}

	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse base URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return "", fmt.Errorf("base URL must be an absolute http(s) URL, got %q", opts.BaseURL)
	}
	if base.Host == "" {
		return "", fmt.Errorf("base URL %q has no host", opts.BaseURL)
	}

	if opts.Locale == "" {
		opts.Locale = DefaultLocale
	}
	if opts.Width == "" {
		opts.Width = DefaultWidth
	}
	if opts.Height == "" {
		opts.Height = DefaultHeight
	}

	query := base.Query()
	query.Set("exercise", opts.ExerciseID)
	query.Set("lang", opts.Locale)
	base.RawQuery = query.Encode()

	var buf bytes.Buffer
	err = snippetTmpl.Execute(&buf, struct {
		Src, Width, Height, Title string
	}{
		Src:    base.String(),
		Width:  opts.Width,
		Height: opts.Height,
		Title:  "Exercise " + opts.ExerciseID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render snippet: %w", err)
	}
	return buf.String(), nil
}
