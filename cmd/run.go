package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/abdess-gv/Techgrounds-AI-playground-sub000/internal/catalog"
	"github.com/abdess-gv/Techgrounds-AI-playground-sub000/internal/runner"
)

func newRunCmd() *cobra.Command {
	var (
		outputDir string
		solutions bool
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "run <pack> [submissions.csv]",
		Short: "Evaluate a batch of submissions against an exercise pack",
		Long: `Evaluate every row of a CSV file (columns ExerciseID and Submission) against
the exercises of a pack, or every exercise's reference solution with --solutions.

Results are written to the output directory as results.json with a resultset.json
metadata manifest.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			if solutions == (len(args) == 2) {
				return fmt.Errorf("provide either a submissions file or --solutions")
			}

			pack, err := catalog.Load(args[0], catalogDir(cmd))
			if err != nil {
				return fmt.Errorf("failed to load exercise pack: %w", err)
			}

			var submissions []runner.Submission
			if solutions {
				submissions = runner.SolutionSubmissions(pack)
			} else {
				submissions, err = runner.LoadSubmissions(args[1])
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			r := runner.NewRunner(stringSetting(cmd, "output-dir", outputDir, settings.OutputDir))
			r.SetProgressFunc(func(packName string, idx, total int) {
				_, _ = fmt.Fprintf(out, "\r  [%s] Evaluating submission %d/%d...", packName, idx, total)
			})

			_, _ = fmt.Fprintf(out, "Exercise pack: %s\n", pack.Name)
			_, _ = fmt.Fprintf(out, "Submissions: %d\n\n", len(submissions))

			run, err := r.Run(ctx, pack, submissions)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(out, "\n\nBatch run completed.\n")
			_, _ = fmt.Fprintf(out, "Run ID: %s\n", run.ID)
			_, _ = fmt.Fprintf(out, "Duration: %s\n", run.Duration)
			_, _ = fmt.Fprintf(out, "Evaluated: %d (fully passed: %d)\n", run.Summary.Evaluated, run.Summary.FullyPassed)
			if run.Summary.MeanScore != nil {
				_, _ = fmt.Fprintf(out, "Score: mean %.2f, min %.0f, max %.0f, variance %.2f\n",
					*run.Summary.MeanScore, *run.Summary.MinScore, *run.Summary.MaxScore, *run.Summary.Variance)
			}
			if len(run.Skipped) > 0 {
				_, _ = fmt.Fprintf(out, "Skipped (unknown exercise): %d\n", len(run.Skipped))
			}
			if run.Cancelled {
				_, _ = fmt.Fprintln(out, "Run was cancelled before all submissions were evaluated.")
			}
			_, _ = fmt.Fprintf(out, "Results: %s\n", run.ResultsFile)

			slog.Info("batch run complete", "run_id", run.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&outputDir, "output-dir", "results", "Directory for batch results (or set PLAYGROUND_OUTPUT_DIR)")
	cmd.Flags().BoolVar(&solutions, "solutions", false, "Evaluate each exercise's reference solution")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Overall timeout for the batch run (e.g. 5m). 0 means no timeout")

	return cmd
}
