package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abdess-gv/Techgrounds-AI-playground-sub000/internal/catalog"
	"github.com/abdess-gv/Techgrounds-AI-playground-sub000/internal/evaluator"
)

const (
	// ResultsFileName holds the per-submission evaluations of a run.
	ResultsFileName = "results.json"
	// MetadataFileName holds the run metadata used for listing runs.
	MetadataFileName = "resultset.json"
)

// ProgressFunc is called to report progress during a batch run.
type ProgressFunc func(pack string, index, total int)

// Result is the evaluation of a single submission. The submission text itself
// is not kept.
type Result struct {
	ExerciseID string                      `json:"exercise_id"`
	Evaluation *evaluator.EvaluationResult `json:"evaluation"`
}

// Run describes a completed batch run.
type Run struct {
	ID          string        `json:"id"`
	Pack        string        `json:"pack"`
	Timestamp   time.Time     `json:"timestamp"`
	Duration    time.Duration `json:"-"`
	ResultsFile string        `json:"results_file"`
	Skipped     []string      `json:"skipped,omitempty"`
	Cancelled   bool          `json:"cancelled,omitempty"`
	Summary     Summary       `json:"summary"`
	Results     []Result      `json:"-"`
}

// ResultsOutput is the content of a run's results file.
type ResultsOutput struct {
	RunID   string   `json:"run_id"`
	Pack    string   `json:"pack"`
	Results []Result `json:"results"`
	Summary Summary  `json:"summary"`
}

// Runner evaluates batches of submissions against an exercise pack.
type Runner struct {
	outputDir string
	progress  ProgressFunc
	now       func() time.Time
}

// NewRunner creates a runner writing its results below outputDir.
func NewRunner(outputDir string) *Runner {
	return &Runner{
		outputDir: outputDir,
		now:       time.Now,
	}
}

// SetProgressFunc sets the progress callback.
func (r *Runner) SetProgressFunc(fn ProgressFunc) {
	r.progress = fn
}

// Run evaluates the submissions sequentially and writes the results.
// Submissions for exercises the pack does not contain are skipped with a warning.
// A cancelled context stops the run between submissions; what was evaluated
// so far is still written.
func (r *Runner) Run(ctx context.Context, pack *catalog.Pack, submissions []Submission) (*Run, error) {
	if pack == nil {
		return nil, fmt.Errorf("no exercise pack specified for batch run")
	}
	if len(submissions) == 0 {
		return nil, fmt.Errorf("no submissions to evaluate")
	}

	timestamp := r.now()
	runID := newRunID(pack.Name, timestamp)

	outputPath := filepath.Join(r.outputDir, runID)
	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	run := &Run{
		ID:          runID,
		Pack:        pack.Name,
		Timestamp:   timestamp,
		ResultsFile: filepath.Join(outputPath, ResultsFileName),
		Results:     make([]Result, 0, len(submissions)),
	}

	slog.Info("running batch evaluation", "pack", pack.Name, "submissions", len(submissions))

	for i, sub := range submissions {
		if err := ctx.Err(); err != nil {
			slog.Warn("batch run cancelled", "pack", pack.Name, "completed", i, "total", len(submissions))
			run.Cancelled = true
			break
		}

		if r.progress != nil {
			r.progress(pack.Name, i+1, len(submissions))
		}

		ex, ok := pack.Exercise(sub.ExerciseID)
		if !ok {
			slog.Warn("skipping submission for unknown exercise", "pack", pack.Name, "exercise", sub.ExerciseID)
			run.Skipped = append(run.Skipped, sub.ExerciseID)
			continue
		}

		eval, err := evaluator.EvaluateExercise(ex.ToEvaluator(), sub.Text)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate submission for exercise %s: %w", sub.ExerciseID, err)
		}

		slog.Debug("submission evaluated", "exercise", sub.ExerciseID, "score", eval.OverallScore)
		run.Results = append(run.Results, Result{
			ExerciseID: sub.ExerciseID,
			Evaluation: eval,
		})
	}

	run.Summary = Summarize(run.Results)
	run.Duration = r.now().Sub(timestamp)

	if err := writeResults(run); err != nil {
		return nil, err
	}
	if err := writeRunMetadata(outputPath, run); err != nil {
		return nil, fmt.Errorf("failed to write run metadata: %w", err)
	}

	slog.Info("batch evaluation complete",
		"pack", pack.Name,
		"evaluated", run.Summary.Evaluated,
		"skipped", len(run.Skipped),
		"duration", run.Duration,
	)

	return run, nil
}

// ReadResults loads a results file written by Run.
func ReadResults(path string) (*ResultsOutput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read results file: %w", err)
	}
	var out ResultsOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse results file: %w", err)
	}
	return &out, nil
}

func newRunID(pack string, ts time.Time) string {
	sanitizedName := sanitizeFilename(strings.ReplaceAll(pack, " ", "_"))
	return fmt.Sprintf("%s_%s_%s", sanitizedName, ts.Format("20060102-150405"), uuid.NewString()[:8])
}

// sanitizeFilename replaces characters unsafe for filenames with underscores.
func sanitizeFilename(name string) string {
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
	)
	return replacer.Replace(name)
}

func writeResults(run *Run) error {
	output := ResultsOutput{
		RunID:   run.ID,
		Pack:    run.Pack,
		Results: run.Results,
		Summary: run.Summary,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	if err := os.WriteFile(run.ResultsFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write results file: %w", err)
	}
	return nil
}

func writeRunMetadata(outputPath string, run *Run) error {
	metadata := map[string]interface{}{
		"id":            run.ID,
		"pack":          run.Pack,
		"timestamp":     run.Timestamp,
		"full_duration": run.Duration.Seconds(),
		"results_file":  run.ResultsFile,
		"evaluated":     run.Summary.Evaluated,
		"fully_passed":  run.Summary.FullyPassed,
		"skipped":       len(run.Skipped),
		"cancelled":     run.Cancelled,
	}

	data, err := json.MarshalIndent(metadata, "", "    ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(outputPath, MetadataFileName), data, 0o644)
}
