package sitegen

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"
	"time"
)

// RSS 2.0 document types.
type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	LastBuildDate string    `xml:"lastBuildDate,omitempty"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	GUID        string   `xml:"guid"`
	PubDate     string   `xml:"pubDate"`
	Categories  []string `xml:"category,omitempty"`
}

// WriteRSS writes the RSS 2.0 feed for the published posts.
func (b *Builder) WriteRSS(path string) error {
	channel := rssChannel{
		Title:       b.site.Title,
		Link:        b.site.BaseURL,
		Description: b.site.Description,
	}
	if len(b.posts) > 0 {
		channel.LastBuildDate = b.posts[0].PublishedAt.UTC().Format(time.RFC1123Z)
	}

	for _, p := range b.posts {
		link := b.absURL(p.URL)
		channel.Items = append(channel.Items, rssItem{
			Title:       p.Title,
			Link:        link,
			Description: p.Summary,
			GUID:        link,
			PubDate:     p.PublishedAt.UTC().Format(time.RFC1123Z),
			Categories:  p.Tags,
		})
	}

	return writeXML(path, rssFeed{Version: "2.0", Channel: channel})
}

// Sitemap types per the sitemaps.org protocol.
type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// WriteSitemap writes sitemap.xml covering the home page and every
// published post.
func (b *Builder) WriteSitemap(path string) error {
	set := urlSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  []sitemapURL{{Loc: b.absURL("/")}},
	}
	for _, p := range b.posts {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:     b.absURL(p.URL),
			LastMod: p.PublishedAt.UTC().Format("2006-01-02"),
		})
	}
	return writeXML(path, set)
}

func (b *Builder) absURL(path string) string {
	return strings.TrimRight(b.site.BaseURL, "/") + path
}

func writeXML(path string, v any) error {
	data, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	out := append([]byte(xml.Header), data...)
	out = append(out, '\n')
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
