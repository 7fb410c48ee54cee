package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/cobra"

	"github.com/abdess-gv/Techgrounds-AI-playground-sub000/internal/evaluator"
)

// maxSubmissionSize bounds submissions read from files or stdin.
const maxSubmissionSize = 1 << 20

func newEvaluateCmd() *cobra.Command {
	var (
		file    string
		text    string
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate <pack> <exercise-id>",
		Short: "Evaluate a submission against an exercise's criteria",
		Long: `Evaluate a submission against the success criteria of an exercise.

The submission is read from --file, --text or standard input, in that order.
Files must contain plain text.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, ex, err := loadExercise(catalogDir(cmd), args[0], args[1])
			if err != nil {
				return err
			}

			submission, err := readSubmission(file, text, cmd.InOrStdin())
			if err != nil {
				return err
			}

			result, err := evaluator.EvaluateExercise(ex.ToEvaluator(), submission)
			if err != nil {
				return fmt.Errorf("failed to evaluate submission: %w", err)
			}

			if jsonOut {
				data, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal evaluation: %w", err)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			printEvaluation(cmd.OutOrStdout(), ex.Title, result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the submission from a text file")
	cmd.Flags().StringVar(&text, "text", "", "Submission text")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the evaluation as JSON")

	return cmd
}

func readSubmission(file, text string, stdin io.Reader) (string, error) {
	switch {
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read submission file: %w", err)
		}
		if len(data) > maxSubmissionSize {
			return "", fmt.Errorf("submission file exceeds %d bytes", maxSubmissionSize)
		}
		if err := ensureText(data); err != nil {
			return "", err
		}
		return string(data), nil
	case text != "":
		return text, nil
	default:
		data, err := io.ReadAll(io.LimitReader(stdin, maxSubmissionSize+1))
		if err != nil {
			return "", fmt.Errorf("failed to read submission from stdin: %w", err)
		}
		if len(data) > maxSubmissionSize {
			return "", fmt.Errorf("submission exceeds %d bytes", maxSubmissionSize)
		}
		return string(data), nil
	}
}

// ensureText rejects content that is not detected as text/plain or one of
// its descendants (markdown, HTML, CSV...).
func ensureText(data []byte) error {
	detected := mimetype.Detect(data)
	for m := detected; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return nil
		}
	}
	return fmt.Errorf("unsupported submission file type: %s", detected.String())
}

func printEvaluation(w io.Writer, title string, result *evaluator.EvaluationResult) {
	_, _ = fmt.Fprintf(w, "%s\n", title)
	_, _ = fmt.Fprintf(w, "Score: %.0f%% (%d/%d criteria passed)\n\n", result.OverallScore, result.PassedCount, result.TotalCount)

	for _, cr := range result.PerCriterion {
		mark := "FAIL"
		if cr.Passed {
			mark = "PASS"
		}
		_, _ = fmt.Fprintf(w, "  [%s] %s\n", mark, cr.Criterion)
		_, _ = fmt.Fprintf(w, "         %s\n", cr.Feedback)
	}

	if len(result.Suggestions) > 0 {
		_, _ = fmt.Fprintln(w, "\nSuggestions:")
		for _, s := range result.Suggestions {
			_, _ = fmt.Fprintf(w, "  - %s\n", s)
		}
	}
}
