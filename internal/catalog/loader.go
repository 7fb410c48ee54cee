package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed all:testdata
var embeddedPacks embed.FS

const (
	configFile           = "config.yaml"
	defaultExercisesFile = "exercises.yaml"
	defaultLocale        = "en"
)

// Load loads an exercise pack by name, searching first in the external directory
// (if provided), then in the embedded packs.
func Load(name string, externalDir string) (*Pack, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("invalid exercise pack name %q", name)
	}

	// Try external directory first.
	if externalDir != "" {
		dir := filepath.Join(externalDir, name)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return loadFromFS(os.DirFS(dir), name)
		}
	}

	// embed.FS always uses forward slashes.
	subFS, err := fs.Sub(embeddedPacks, path.Join("testdata", name))
	if err != nil {
		return nil, fmt.Errorf("exercise pack %q not found: %w", name, err)
	}
	if _, err := fs.Stat(subFS, configFile); err != nil {
		return nil, fmt.Errorf("exercise pack %q not found: %w", name, err)
	}
	return loadFromFS(subFS, name)
}

// List returns the names of all available exercise packs, sorted.
func List(externalDir string) ([]string, error) {
	seen := make(map[string]bool)
	var names []string

	entries, err := fs.ReadDir(embeddedPacks, "testdata")
	if err == nil {
		for _, e := range entries {
			if e.IsDir() {
				seen[e.Name()] = true
				names = append(names, e.Name())
			}
		}
	}

	if externalDir != "" {
		entries, err := os.ReadDir(externalDir)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read catalog directory: %w", err)
		}
		for _, e := range entries {
			if e.IsDir() && !seen[e.Name()] {
				seen[e.Name()] = true
				names = append(names, e.Name())
			}
		}
	}

	sort.Strings(names)
	return names, nil
}

// LoadAll loads every available pack. It fails on the first pack that does not load.
func LoadAll(externalDir string) ([]*Pack, error) {
	names, err := List(externalDir)
	if err != nil {
		return nil, err
	}

	packs := make([]*Pack, 0, len(names))
	for _, name := range names {
		pack, err := Load(name, externalDir)
		if err != nil {
			return nil, err
		}
		packs = append(packs, pack)
	}
	return packs, nil
}

func loadFromFS(fsys fs.FS, name string) (*Pack, error) {
	configData, err := fs.ReadFile(fsys, configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s for pack %q: %w", configFile, name, err)
	}

	var pack Pack
	if err := yaml.Unmarshal(configData, &pack); err != nil {
		return nil, fmt.Errorf("failed to parse %s for pack %q: %w", configFile, name, err)
	}

	if pack.Name == "" {
		pack.Name = name
	}
	if pack.Locale == "" {
		pack.Locale = defaultLocale
	}
	if pack.ExercisesFile == "" {
		pack.ExercisesFile = defaultExercisesFile
	}

	exercises, err := loadExercisesFromFS(fsys, pack.ExercisesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load exercises for pack %q: %w", name, err)
	}
	pack.Exercises = exercises

	if err := Validate(&pack); err != nil {
		return nil, err
	}

	return &pack, nil
}

func loadExercisesFromFS(fsys fs.FS, filename string) ([]Exercise, error) {
	data, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}

	var file struct {
		Exercises []Exercise `yaml:"exercises"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	for i := range file.Exercises {
		if file.Exercises[i].Difficulty == "" {
			file.Exercises[i].Difficulty = DifficultyBeginner
		}
	}

	return file.Exercises, nil
}
