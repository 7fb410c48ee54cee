package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdess-gv/Techgrounds-AI-playground-sub000/internal/iframe"
)

func newEmbedCmd() *cobra.Command {
	var (
		baseURL string
		locale  string
		width   string
		height  string
	)

	cmd := &cobra.Command{
		Use:   "embed <exercise-id>",
		Short: "Print an iframe snippet embedding an exercise widget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snippet, err := iframe.Snippet(iframe.Options{
				BaseURL:    stringSetting(cmd, "base-url", baseURL, settings.EmbedBaseURL),
				ExerciseID: args[0],
				Locale:     stringSetting(cmd, "locale", locale, settings.Locale),
				Width:      width,
				Height:     height,
			})
			if err != nil {
				return fmt.Errorf("failed to render embed snippet: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), snippet)
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "Widget base URL (or set PLAYGROUND_EMBED_BASE_URL)")
	cmd.Flags().StringVar(&locale, "locale", iframe.DefaultLocale, "Widget locale: en or nl (or set PLAYGROUND_LOCALE)")
	cmd.Flags().StringVar(&width, "width", iframe.DefaultWidth, "iframe width")
	cmd.Flags().StringVar(&height, "height", iframe.DefaultHeight, "iframe height")

	return cmd
}
