package content

import (
	"os"
	"path/filepath"
	"testing"
)

func writePost(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(filepath.Join(dir, name)), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func testRepo(t *testing.T) *Repository {
	t.Helper()
	dir := t.TempDir()

	writePost(t, dir, "react-server-components.mdx", `---
title: React Server Components
publishedAt: 2026-02-10
summary: Where RSC fits in a patient-facing app
tags:
  - react
  - architecture
---
Body one.`)

	writePost(t, dir, "nextjs-caching.md", `---
title: Next.js Caching Layers
publishedAt: 2026-03-01
summary: fetch cache, route cache, and when to opt out
tags:
  - nextjs
---
Body two.`)

	writePost(t, dir, "drafts/unreleased.mdx", `---
title: Unreleased Notes
publishedAt: 2026-03-15
summary: not yet public
draft: true
tags:
  - secrets
  - react
---
Hidden body.`)

	repo, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return repo
}

func TestListPostsExcludesDraftsNewestFirst(t *testing.T) {
	repo := testRepo(t)

	posts := repo.ListPosts()
	if len(posts) != 2 {
		t.Fatalf("posts = %d, want 2", len(posts))
	}
	if posts[0].Slug != "nextjs-caching" || posts[1].Slug != "react-server-components" {
		t.Errorf("order = %s, %s", posts[0].Slug, posts[1].Slug)
	}
}

func TestGetPostBySlugIncludesDrafts(t *testing.T) {
	repo := testRepo(t)

	p := repo.GetPostBySlug("drafts/unreleased")
	if p == nil {
		t.Fatal("draft should be reachable by slug")
	}
	if !p.Draft {
		t.Error("expected draft flag")
	}
	if p.URL != "/posts/drafts/unreleased" {
		t.Errorf("url = %q", p.URL)
	}

	if repo.GetPostBySlug("nope") != nil {
		t.Error("unknown slug should return nil")
	}
}

func TestListPostsByTag(t *testing.T) {
	repo := testRepo(t)

	posts := repo.ListPostsByTag("react")
	if len(posts) != 1 || posts[0].Slug != "react-server-components" {
		t.Errorf("react posts = %+v", posts)
	}
	if got := repo.ListPostsByTag("secrets"); len(got) != 0 {
		t.Errorf("draft-only tag should match nothing, got %+v", got)
	}
}

func TestListTagsExcludesDraftOnlyTags(t *testing.T) {
	repo := testRepo(t)

	tags := repo.ListTags()
	want := []string{"architecture", "nextjs", "react"}
	if len(tags) != len(want) {
		t.Fatalf("tags = %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("tags[%d] = %q, want %q", i, tags[i], want[i])
		}
	}
}

func TestListLatestPosts(t *testing.T) {
	repo := testRepo(t)

	latest := repo.ListLatestPosts(1)
	if len(latest) != 1 || latest[0].Slug != "nextjs-caching" {
		t.Errorf("latest = %+v", latest)
	}
	if got := repo.ListLatestPosts(10); len(got) != 2 {
		t.Errorf("latest(10) = %d posts, want all 2", len(got))
	}
}

func TestLoadRejectsMissingFrontmatter(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "bad.md", "no frontmatter here")

	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for missing frontmatter")
	}
}

func TestLoadRejectsMissingTitle(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "bad.md", `---
publishedAt: 2026-01-01
summary: s
---
body`)

	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for missing title")
	}
}
