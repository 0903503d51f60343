package sitegen

import (
	"encoding/json"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rghosh/devnotes/internal/content"
	"github.com/rghosh/devnotes/internal/search"
)

func testSite() Site {
	return Site{
		BaseURL:     "https://devnotes.example.com",
		Title:       "Dev Notes",
		Description: "Notes on React, Next.js and AI tooling",
		Author:      "rghosh",
	}
}

func testBuilder(t *testing.T) *Builder {
	t.Helper()
	dir := t.TempDir()

	write := func(name, body string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("first.md", `---
title: First Post
publishedAt: 2026-01-10
summary: the first one
tags:
  - react
---
body`)
	write("second.md", `---
title: Second Post
publishedAt: 2026-02-20
summary: the second one
---
body`)
	write("draft.md", `---
title: Hidden
publishedAt: 2026-03-01
summary: never published
draft: true
---
body`)

	repo, err := content.Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return NewBuilder(testSite(), repo)
}

func TestBuildAllArtifacts(t *testing.T) {
	b := testBuilder(t)
	out := t.TempDir()

	if err := b.BuildAll(out); err != nil {
		t.Fatalf("build: %v", err)
	}
	for _, name := range []string{"search-index.json", "rss.xml", "sitemap.xml"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("missing artifact %s: %v", name, err)
		}
	}
}

func TestSearchIndexExcludesDrafts(t *testing.T) {
	b := testBuilder(t)
	out := t.TempDir()
	path := filepath.Join(out, "search-index.json")

	if err := b.WriteSearchIndex(path); err != nil {
		t.Fatalf("write: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var entries []search.Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		t.Fatalf("parse index: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2 (draft excluded)", len(entries))
	}
	if entries[0].Slug != "second" {
		t.Errorf("first entry = %s, want newest post", entries[0].Slug)
	}

	// The written index round-trips into a queryable search index.
	ix := search.New(entries)
	if got := ix.Query("first", 5); len(got) != 1 || got[0].Entry.Slug != "first" {
		t.Errorf("query over written index = %v", got)
	}
}

func TestRSSFeed(t *testing.T) {
	b := testBuilder(t)
	path := filepath.Join(t.TempDir(), "rss.xml")

	if err := b.WriteRSS(path); err != nil {
		t.Fatalf("write: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var feed rssFeed
	if err := xml.Unmarshal(raw, &feed); err != nil {
		t.Fatalf("parse feed: %v", err)
	}
	if feed.Version != "2.0" {
		t.Errorf("version = %q", feed.Version)
	}
	if len(feed.Channel.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(feed.Channel.Items))
	}
	item := feed.Channel.Items[0]
	if item.Link != "https://devnotes.example.com/posts/second" {
		t.Errorf("link = %q", item.Link)
	}
	if !strings.Contains(string(raw), "<?xml") {
		t.Error("missing XML header")
	}
}

func TestSitemap(t *testing.T) {
	b := testBuilder(t)
	path := filepath.Join(t.TempDir(), "sitemap.xml")

	if err := b.WriteSitemap(path); err != nil {
		t.Fatalf("write: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var set urlSet
	if err := xml.Unmarshal(raw, &set); err != nil {
		t.Fatalf("parse sitemap: %v", err)
	}
	// Home page plus two published posts.
	if len(set.URLs) != 3 {
		t.Fatalf("urls = %d, want 3", len(set.URLs))
	}
	if set.URLs[0].Loc != "https://devnotes.example.com/" {
		t.Errorf("first loc = %q", set.URLs[0].Loc)
	}
}
