package feed

import (
	"encoding/xml"
	"fmt"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/umputun/headlines/pkg/domain"
)

// Generator republishes stored articles as an RSS 2.0 feed
type Generator struct {
	baseURL string
	title   string
	now     func() time.Time
}

// RSS is the root element of a generated feed
type RSS struct {
	XMLName xml.Name    `xml:"rss"`
	Version string      `xml:"version,attr"`
	Atom    string      `xml:"xmlns:atom,attr"`
	Channel *RSSChannel `xml:"channel"`
}

// RSSChannel represents an RSS channel
type RSSChannel struct {
	XMLName       xml.Name   `xml:"channel"`
	Title         string     `xml:"title"`
	Link          string     `xml:"link"`
	Description   string     `xml:"description"`
	AtomLink      *AtomLink  `xml:"http://www.w3.org/2005/Atom link"`
	LastBuildDate string     `xml:"lastBuildDate"`
	Items         []*RSSItem `xml:"item"`
}

// AtomLink represents an Atom self link within RSS
type AtomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

// RSSItem represents an item in a generated feed
type RSSItem struct {
	Title      string        `xml:"title"`
	Link       string        `xml:"link"`
	GUID       string        `xml:"guid"`
	Source     string        `xml:"source,omitempty"`
	PubDate    string        `xml:"pubDate"`
	Categories []string      `xml:"category"`
	Enclosure  *RSSEnclosure `xml:"enclosure,omitempty"`
}

// RSSEnclosure carries the article image
type RSSEnclosure struct {
	URL    string `xml:"url,attr"`
	Type   string `xml:"type,attr"`
	Length int    `xml:"length,attr"`
}

// NewGenerator makes a generator for feeds served under baseURL
func NewGenerator(baseURL, title string) *Generator {
	if title == "" {
		title = "Headlines"
	}
	return &Generator{baseURL: strings.TrimRight(baseURL, "/"), title: title, now: time.Now}
}

// GenerateRSS renders articles in the given order. Empty category means all categories.
func (g *Generator) GenerateRSS(articles []domain.Article, category string) (string, error) {
	title := g.title + " - All Categories"
	selfLink := g.baseURL + "/rss"
	if category != "" {
		title = fmt.Sprintf("%s - %s", g.title, category)
		selfLink = fmt.Sprintf("%s/rss/%s", g.baseURL, category)
	}

	items := make([]*RSSItem, 0, len(articles))
	for _, a := range articles {
		items = append(items, g.convertToRSSItem(a))
	}

	doc := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         title,
			Link:          g.baseURL + "/",
			Description:   "Latest headlines collected from the feed catalog",
			AtomLink:      &AtomLink{Href: selfLink, Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: g.now().UTC().Format(time.RFC1123Z),
			Items:         items,
		},
	}

	output, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}
	return xml.Header + string(output), nil
}

func (g *Generator) convertToRSSItem(a domain.Article) *RSSItem {
	item := &RSSItem{
		Title:      a.Title,
		Link:       a.Link,
		GUID:       a.Link,
		Source:     a.Source,
		PubDate:    a.PublishedAt.UTC().Format(time.RFC1123Z),
		Categories: []string{a.Category},
	}
	if a.ImageURL != "" {
		item.Enclosure = &RSSEnclosure{URL: a.ImageURL, Type: imageType(a.ImageURL)}
	}
	return item
}

// imageType guesses enclosure mime type from the url extension
func imageType(link string) string {
	p := link
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if t := mime.TypeByExtension(strings.ToLower(path.Ext(p))); strings.HasPrefix(t, "image/") {
		return t
	}
	return "image/jpeg"
}
