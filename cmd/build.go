package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rghosh/devnotes/internal/content"
	"github.com/rghosh/devnotes/internal/sitegen"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate site artifacts (search index, RSS feed, sitemap)",
	RunE: func(cmd *cobra.Command, args []string) error {
		contentDir, _ := cmd.Flags().GetString("content")
		outDir, _ := cmd.Flags().GetString("out")

		repo, err := content.Load(contentDir)
		if err != nil {
			return fmt.Errorf("load posts: %w", err)
		}

		b := sitegen.NewBuilder(siteFromFlags(cmd), repo)
		if err := b.BuildAll(outDir); err != nil {
			return err
		}

		fmt.Printf("Wrote search-index.json, rss.xml, sitemap.xml to %s (%d posts)\n",
			outDir, len(repo.ListPosts()))
		return nil
	},
}

func siteFromFlags(cmd *cobra.Command) sitegen.Site {
	baseURL, _ := cmd.Flags().GetString("base-url")
	title, _ := cmd.Flags().GetString("site-title")
	desc, _ := cmd.Flags().GetString("site-description")
	author, _ := cmd.Flags().GetString("author")
	return sitegen.Site{
		BaseURL:     baseURL,
		Title:       title,
		Description: desc,
		Author:      author,
	}
}

func addSiteFlags(cmd *cobra.Command) {
	cmd.Flags().String("content", "content/posts", "Directory holding markdown posts")
	cmd.Flags().String("base-url", "https://rghosh.dev", "Canonical site URL")
	cmd.Flags().String("site-title", "Dev Notes", "Site title for feeds")
	cmd.Flags().String("site-description", "Notes on React, Next.js and AI tooling", "Site description for feeds")
	cmd.Flags().String("author", "Rahul Ghosh", "Feed author")
}

func init() {
	addSiteFlags(buildCmd)
	buildCmd.Flags().String("out", "public", "Output directory for generated artifacts")
}
