package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abdess-gv/Techgrounds-AI-playground-sub000/internal/catalog"
)

func newShowCmd() *cobra.Command {
	var withSolution bool

	cmd := &cobra.Command{
		Use:   "show <pack> <exercise-id>",
		Short: "Show an exercise with its criteria and hints",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pack, ex, err := loadExercise(catalogDir(cmd), args[0], args[1])
			if err != nil {
				return err
			}
			printExercise(cmd.OutOrStdout(), pack, ex, withSolution)
			return nil
		},
	}

	cmd.Flags().BoolVar(&withSolution, "solution", false, "Also print the reference solution")

	return cmd
}

func loadExercise(dir, packName, exerciseID string) (*catalog.Pack, *catalog.Exercise, error) {
	pack, err := catalog.Load(packName, dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load exercise pack: %w", err)
	}
	ex, ok := pack.Exercise(exerciseID)
	if !ok {
		return nil, nil, fmt.Errorf("exercise %q not found in pack %q", exerciseID, packName)
	}
	return pack, ex, nil
}

func printExercise(w io.Writer, pack *catalog.Pack, ex *catalog.Exercise, withSolution bool) {
	_, _ = fmt.Fprintf(w, "%s\n", ex.Title)
	_, _ = fmt.Fprintf(w, "  Pack: %s  Exercise: %s  Difficulty: %s\n\n", pack.Name, ex.ID, ex.Difficulty)
	_, _ = fmt.Fprintf(w, "%s\n\n", catalog.PlainText(ex.Prompt))

	_, _ = fmt.Fprintln(w, "Criteria:")
	for i, c := range ex.Criteria {
		_, _ = fmt.Fprintf(w, "  %d. %s\n", i+1, c)
	}

	if len(ex.Hints) > 0 {
		_, _ = fmt.Fprintln(w, "\nHints:")
		for _, h := range ex.Hints {
			_, _ = fmt.Fprintf(w, "  - %s\n", h)
		}
	}

	if withSolution && ex.Solution != "" {
		_, _ = fmt.Fprintf(w, "\nSolution:\n%s\n", catalog.PlainText(ex.Solution))
	}
}
