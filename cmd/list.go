package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abdess-gv/Techgrounds-AI-playground-sub000/internal/catalog"
)

func newListCmd() *cobra.Command {
	var (
		search     string
		difficulty string
		tag        string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List and search available exercises",
		RunE: func(cmd *cobra.Command, args []string) error {
			packs, err := catalog.LoadAll(catalogDir(cmd))
			if err != nil {
				return fmt.Errorf("failed to load exercise packs: %w", err)
			}

			matches := catalog.Search(packs, catalog.Query{
				Text:       search,
				Difficulty: catalog.Difficulty(difficulty),
				Tag:        tag,
			})

			printMatches(cmd.OutOrStdout(), packs, matches)
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Only list exercises matching these terms")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Only list exercises of this difficulty (beginner, intermediate, advanced)")
	cmd.Flags().StringVar(&tag, "tag", "", "Only list exercises with this tag")

	return cmd
}

func printMatches(w io.Writer, packs []*catalog.Pack, matches []catalog.Match) {
	if len(matches) == 0 {
		_, _ = fmt.Fprintln(w, "No exercises found.")
		return
	}

	byPack := make(map[string][]*catalog.Exercise)
	for _, m := range matches {
		byPack[m.Pack] = append(byPack[m.Pack], m.Exercise)
	}

	for _, pack := range packs {
		exercises := byPack[pack.Name]
		if len(exercises) == 0 {
			continue
		}

		_, _ = fmt.Fprintf(w, "%s (%s, v%s)\n", pack.Name, pack.Locale, pack.Version)
		if pack.Description != "" {
			_, _ = fmt.Fprintf(w, "  %s\n", pack.Description)
		}
		for _, ex := range exercises {
			_, _ = fmt.Fprintf(w, "  - %-22s %-13s %s\n", ex.ID, ex.Difficulty, ex.Title)
			if len(ex.Tags) > 0 {
				_, _ = fmt.Fprintf(w, "    tags: %s\n", strings.Join(ex.Tags, ", "))
			}
		}
		_, _ = fmt.Fprintln(w)
	}
}
