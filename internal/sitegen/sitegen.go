// Package sitegen writes the static artifacts the published site serves
// alongside its pages: the search index consumed by the client-side search
// box, the RSS feed, and the sitemap.
package sitegen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rghosh/devnotes/internal/content"
	"github.com/rghosh/devnotes/internal/search"
)

// Site carries the metadata stamped into feeds.
type Site struct {
	BaseURL     string
	Title       string
	Description string
	Author      string
}

// Builder renders artifacts for one set of posts.
type Builder struct {
	site  Site
	posts []content.Post // published only
}

// NewBuilder creates a builder over the repository's published posts.
func NewBuilder(site Site, repo *content.Repository) *Builder {
	return &Builder{site: site, posts: repo.ListPosts()}
}

// BuildAll writes every artifact into outDir.
func (b *Builder) BuildAll(outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := b.WriteSearchIndex(filepath.Join(outDir, "search-index.json")); err != nil {
		return err
	}
	if err := b.WriteRSS(filepath.Join(outDir, "rss.xml")); err != nil {
		return err
	}
	return b.WriteSitemap(filepath.Join(outDir, "sitemap.xml"))
}

// SearchEntries converts the posts into index entries, newest first.
func (b *Builder) SearchEntries() []search.Entry {
	entries := make([]search.Entry, 0, len(b.posts))
	for _, p := range b.posts {
		entries = append(entries, search.Entry{
			Title:       p.Title,
			Summary:     p.Summary,
			Tags:        p.Tags,
			Slug:        p.Slug,
			URL:         p.URL,
			PublishedAt: p.PublishedAt,
		})
	}
	return entries
}

// WriteSearchIndex writes the JSON document the search box loads.
func (b *Builder) WriteSearchIndex(path string) error {
	data, err := json.MarshalIndent(b.SearchEntries(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal search index: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write search index: %w", err)
	}
	return nil
}
