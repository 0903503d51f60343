// Package content loads markdown posts with YAML frontmatter from a content
// directory and answers the site's queries over them: published listings,
// slug lookup, tag filtering.
package content

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Post is one markdown document plus its frontmatter.
type Post struct {
	Title       string    `yaml:"title"`
	PublishedAt time.Time `yaml:"publishedAt"`
	Summary     string    `yaml:"summary"`
	Image       string    `yaml:"image"`
	Tags        []string  `yaml:"tags"`
	Draft       bool      `yaml:"draft"`

	// Derived from the file path, not the frontmatter.
	Slug string `yaml:"-"`
	URL  string `yaml:"-"`
	Body string `yaml:"-"`
}

// Repository holds all loaded posts. Load once at startup; queries are
// in-memory after that.
type Repository struct {
	posts []Post // publishedAt descending, drafts included
}

var frontmatterDelim = []byte("---")

// Load reads every .md and .mdx file under dir into a Repository.
func Load(dir string) (*Repository, error) {
	var posts []Post

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".md" && ext != ".mdx" {
			return nil
		}

		p, err := parseFile(dir, path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		posts = append(posts, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishedAt.After(posts[j].PublishedAt)
	})
	return &Repository{posts: posts}, nil
}

// parseFile splits frontmatter from body and fills the derived fields.
func parseFile(root, path string) (Post, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Post{}, err
	}

	fm, body, err := splitFrontmatter(raw)
	if err != nil {
		return Post{}, err
	}

	var p Post
	if err := yaml.Unmarshal(fm, &p); err != nil {
		return Post{}, fmt.Errorf("parse frontmatter: %w", err)
	}
	if p.Title == "" {
		return Post{}, fmt.Errorf("missing title")
	}
	if p.PublishedAt.IsZero() {
		return Post{}, fmt.Errorf("missing publishedAt")
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return Post{}, err
	}
	slug := strings.TrimSuffix(filepath.ToSlash(rel), filepath.Ext(rel))

	p.Slug = slug
	p.URL = "/posts/" + slug
	p.Body = string(body)
	return p, nil
}

// splitFrontmatter separates the leading YAML block from the markdown body.
func splitFrontmatter(raw []byte) (fm, body []byte, err error) {
	trimmed := bytes.TrimLeft(raw, "\uFEFF\n\r")
	if !bytes.HasPrefix(trimmed, frontmatterDelim) {
		return nil, nil, fmt.Errorf("missing frontmatter")
	}
	rest := trimmed[len(frontmatterDelim):]
	end := bytes.Index(rest, append([]byte("\n"), frontmatterDelim...))
	if end < 0 {
		return nil, nil, fmt.Errorf("unterminated frontmatter")
	}
	fm = rest[:end]
	body = rest[end+1+len(frontmatterDelim):]
	return fm, bytes.TrimLeft(body, "\n\r"), nil
}

// ListPosts returns published posts, newest first. Drafts are excluded.
func (r *Repository) ListPosts() []Post {
	out := make([]Post, 0, len(r.posts))
	for _, p := range r.posts {
		if p.Draft {
			continue
		}
		out = append(out, p)
	}
	return out
}

// GetPostBySlug returns the post with the given slug, drafts included so
// previews keep working, or nil.
func (r *Repository) GetPostBySlug(slug string) *Post {
	for i := range r.posts {
		if r.posts[i].Slug == slug {
			return &r.posts[i]
		}
	}
	return nil
}

// ListPostsByTag returns published posts carrying the tag, newest first.
func (r *Repository) ListPostsByTag(tag string) []Post {
	var out []Post
	for _, p := range r.ListPosts() {
		for _, t := range p.Tags {
			if t == tag {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// ListTags returns the sorted set of tags across published posts. Tags that
// appear only on drafts are excluded, so the tag index never links to a page
// with no visible posts.
func (r *Repository) ListTags() []string {
	set := map[string]struct{}{}
	for _, p := range r.ListPosts() {
		for _, t := range p.Tags {
			set[t] = struct{}{}
		}
	}
	tags := make([]string, 0, len(set))
	for t := range set {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// ListLatestPosts returns up to count published posts, newest first.
func (r *Repository) ListLatestPosts(count int) []Post {
	posts := r.ListPosts()
	if count > 0 && len(posts) > count {
		posts = posts[:count]
	}
	return posts
}
