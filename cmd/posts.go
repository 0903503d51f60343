package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rghosh/devnotes/internal/content"
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "List published posts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		contentDir, _ := cmd.Flags().GetString("content")
		tag, _ := cmd.Flags().GetString("tag")

		repo, err := content.Load(contentDir)
		if err != nil {
			return fmt.Errorf("load posts: %w", err)
		}

		posts := repo.ListPosts()
		if tag != "" {
			posts = repo.ListPostsByTag(tag)
		}
		if len(posts) == 0 {
			fmt.Println("No posts found.")
			return nil
		}

		for _, p := range posts {
			fmt.Printf("%s  %-45s  %s\n",
				p.PublishedAt.Format("2006-01-02"), p.Title, strings.Join(p.Tags, ","))
		}
		return nil
	},
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List tags across published posts",
	RunE: func(cmd *cobra.Command, args []string) error {
		contentDir, _ := cmd.Flags().GetString("content")

		repo, err := content.Load(contentDir)
		if err != nil {
			return fmt.Errorf("load posts: %w", err)
		}

		for _, t := range repo.ListTags() {
			fmt.Printf("%-20s  %d\n", t, len(repo.ListPostsByTag(t)))
		}
		return nil
	},
}

func init() {
	postsCmd.Flags().String("content", "content/posts", "Directory holding markdown posts")
	postsCmd.Flags().String("tag", "", "Only posts carrying this tag")
	tagsCmd.Flags().String("content", "content/posts", "Directory holding markdown posts")
}
