package mcp

import (
	"fmt"
	"path/filepath"
	"strings"
)

// resolveRunPath maps a run ID onto its directory under outputDir. Run IDs
// are single path elements.
func resolveRunPath(outputDir, runID string) (string, error) {
	switch {
	case strings.TrimSpace(runID) == "":
		return "", fmt.Errorf("run_id is required")
	case strings.ContainsAny(runID, `/\`):
		return "", fmt.Errorf("path separators are not allowed")
	case runID == "." || runID == "..":
		return "", fmt.Errorf("path traversal is not allowed")
	}
	return confinePath(outputDir, runID)
}

func resolveSubmissionsPath(outputDir, submissionsFile string) (string, error) {
	if strings.TrimSpace(submissionsFile) == "" {
		return "", fmt.Errorf("submissions_file is required")
	}
	return confinePath(outputDir, submissionsFile)
}

// confinePath resolves p against baseDir and rejects results outside it.
func confinePath(baseDir, p string) (string, error) {
	base, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve base directory: %w", err)
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(base, p)
	}
	target := filepath.Clean(p)

	rel, err := filepath.Rel(base, target)
	if err != nil {
		return "", fmt.Errorf("failed to resolve relative path: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path must be within output directory")
	}
	return target, nil
}
