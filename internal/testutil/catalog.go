// Package testutil provides shared test helpers.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// MinimalExercises is a one-exercise pack body whose solution passes its own criteria.
const MinimalExercises = `exercises:
  - id: role
    title: Give the model a role
    difficulty: beginner
    tags: [role]
    prompt: Write a prompt that gives the model a role.
    criteria:
      - Defines a specific role
      - Describes the expected output format
    solution: |
      Role: you are a senior financial analyst.
      <context>Quarterly budget review.</context>
      Output format: three bullet points.
`

// WritePack writes an exercise pack directory under root and returns its path.
// An empty config gets a minimal English config.yaml.
func WritePack(t *testing.T, root, name, config, exercises string) string {
	t.Helper()

	if config == "" {
		config = "name: " + name + "\nversion: \"1\"\nlocale: en\n"
	}

	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create pack dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(config), 0o644); err != nil {
		t.Fatalf("failed to write config.yaml: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "exercises.yaml"), []byte(exercises), 0o644); err != nil {
		t.Fatalf("failed to write exercises.yaml: %v", err)
	}
	return dir
}

// WriteFile writes content to name under dir and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}
