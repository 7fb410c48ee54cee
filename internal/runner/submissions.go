package runner

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abdess-gv/Techgrounds-AI-playground-sub000/internal/catalog"
)

// Submission is one answer to evaluate against a catalog exercise.
type Submission struct {
	ExerciseID string
	Text       string
}

// LoadSubmissions reads submissions from a CSV file with the header columns
// ExerciseID and Submission. Extra columns are ignored.
func LoadSubmissions(path string) ([]Submission, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open submissions file: %w", err)
	}
	defer f.Close()

	return readSubmissions(f)
}

func readSubmissions(r io.Reader) ([]Submission, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1 // Allow variable field counts.

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[strings.TrimSpace(col)] = i
	}

	for _, required := range []string{"ExerciseID", "Submission"} {
		if _, ok := colIndex[required]; !ok {
			return nil, fmt.Errorf("missing required CSV column: %s", required)
		}
	}

	minCols := 0
	for _, idx := range colIndex {
		if idx >= minCols {
			minCols = idx + 1
		}
	}

	var submissions []Submission
	for lineNum := 2; ; lineNum++ { // 1-indexed, after header.
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", lineNum, err)
		}
		if len(record) < minCols {
			return nil, fmt.Errorf("CSV row %d has %d columns, expected at least %d", lineNum, len(record), minCols)
		}

		submissions = append(submissions, Submission{
			ExerciseID: strings.TrimSpace(record[colIndex["ExerciseID"]]),
			Text:       record[colIndex["Submission"]],
		})
	}

	return submissions, nil
}

// SolutionSubmissions turns every exercise's reference solution into a
// submission, with display markup stripped. Exercises without a solution are skipped.
func SolutionSubmissions(pack *catalog.Pack) []Submission {
	var submissions []Submission
	for _, ex := range pack.Exercises {
		if strings.TrimSpace(ex.Solution) == "" {
			continue
		}
		submissions = append(submissions, Submission{
			ExerciseID: ex.ID,
			Text:       catalog.PlainText(ex.Solution),
		})
	}
	return submissions
}
