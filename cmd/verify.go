package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abdess-gv/Techgrounds-AI-playground-sub000/internal/catalog"
	"github.com/abdess-gv/Techgrounds-AI-playground-sub000/internal/evaluator"
	"github.com/abdess-gv/Techgrounds-AI-playground-sub000/internal/runner"
)

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [pack...]",
		Short: "Check that every reference solution passes its own criteria",
		Long: `Validate exercise packs and evaluate each exercise's reference solution
against the exercise's criteria. Without arguments all packs are verified.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := catalogDir(cmd)

			names := args
			if len(names) == 0 {
				var err error
				names, err = catalog.List(dir)
				if err != nil {
					return fmt.Errorf("failed to list exercise packs: %w", err)
				}
			}

			failed := 0
			for _, name := range names {
				pack, err := catalog.Load(name, dir)
				if err != nil {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", name, err)
					failed++
					continue
				}
				n, err := verifyPack(cmd.OutOrStdout(), pack)
				if err != nil {
					return err
				}
				failed += n
			}

			if failed > 0 {
				return fmt.Errorf("%d verification failure(s)", failed)
			}
			return nil
		},
	}

	return cmd
}

// verifyPack evaluates each reference solution and returns the number of
// exercises whose solution does not pass.
func verifyPack(w io.Writer, pack *catalog.Pack) (int, error) {
	_, _ = fmt.Fprintf(w, "%s\n", pack.Name)

	failed := 0
	withSolution := make(map[string]bool)
	for _, sub := range runner.SolutionSubmissions(pack) {
		withSolution[sub.ExerciseID] = true

		ex, _ := pack.Exercise(sub.ExerciseID)
		result, err := evaluator.EvaluateExercise(ex.ToEvaluator(), sub.Text)
		if err != nil {
			return failed, fmt.Errorf("failed to evaluate solution for %s: %w", ex.ID, err)
		}

		if result.Passed() {
			_, _ = fmt.Fprintf(w, "  ok    %s\n", ex.ID)
			continue
		}

		failed++
		_, _ = fmt.Fprintf(w, "  FAIL  %s (%d/%d criteria)\n", ex.ID, result.PassedCount, result.TotalCount)
		for _, cr := range result.PerCriterion {
			if !cr.Passed {
				_, _ = fmt.Fprintf(w, "        %s: %s\n", cr.Criterion, cr.Feedback)
			}
		}
	}

	for _, ex := range pack.Exercises {
		if !withSolution[ex.ID] {
			_, _ = fmt.Fprintf(w, "  skip  %s (no reference solution)\n", ex.ID)
		}
	}

	return failed, nil
}
