package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rghosh/devnotes/internal/content"
	"github.com/rghosh/devnotes/internal/search"
	"github.com/rghosh/devnotes/internal/sitegen"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy-search published posts",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		contentDir, _ := cmd.Flags().GetString("content")
		limit, _ := cmd.Flags().GetInt("limit")
		query := strings.Join(args, " ")

		repo, err := content.Load(contentDir)
		if err != nil {
			return fmt.Errorf("load posts: %w", err)
		}

		b := sitegen.NewBuilder(sitegen.Site{}, repo)
		ix := search.New(b.SearchEntries())

		results := ix.Query(query, limit)
		if len(results) == 0 {
			fmt.Println("No matches.")
			return nil
		}

		for _, r := range results {
			fmt.Printf("%-40s  %s\n", r.Entry.Title, r.Entry.URL)
			if r.Entry.Summary != "" {
				fmt.Printf("    %s\n", r.Entry.Summary)
			}
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().String("content", "content/posts", "Directory holding markdown posts")
	searchCmd.Flags().IntP("limit", "n", search.DefaultLimit, "Maximum results")
}
