package feed

import (
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/headlines/pkg/domain"
)

func TestGenerator_GenerateRSS(t *testing.T) {
	gen := NewGenerator("https://example.com/", "")
	gen.now = func() time.Time { return time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC) }

	pub := time.Date(2024, 1, 1, 12, 0, 0, 0, time.FixedZone("EST", -5*3600))
	articles := []domain.Article{
		{Source: "Example", Category: "tech", Title: "First & best", Link: "https://example.com/a1",
			PublishedAt: pub, ImageURL: "https://cdn.example.com/a1.png?w=300"},
		{Source: "Other", Category: "business", Title: "Second", Link: "https://example.com/a2",
			PublishedAt: pub.Add(-time.Hour)},
	}

	t.Run("all categories", func(t *testing.T) {
		rss, err := gen.GenerateRSS(articles, "")
		require.NoError(t, err)

		assert.Contains(t, rss, `<?xml version="1.0" encoding="UTF-8"?>`)
		assert.Contains(t, rss, `<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`)
		assert.Contains(t, rss, `<title>Headlines - All Categories</title>`)
		assert.Contains(t, rss, `<link>https://example.com/</link>`)
		assert.Contains(t, rss, `<link xmlns="http://www.w3.org/2005/Atom" href="https://example.com/rss" rel="self" type="application/rss+xml"></link>`)
		assert.Contains(t, rss, `<lastBuildDate>Tue, 02 Jan 2024 00:00:00 +0000</lastBuildDate>`)

		assert.Contains(t, rss, `<title>First &amp; best</title>`)
		assert.Contains(t, rss, `<guid>https://example.com/a1</guid>`)
		assert.Contains(t, rss, `<source>Example</source>`)
		assert.Contains(t, rss, `<pubDate>Mon, 01 Jan 2024 17:00:00 +0000</pubDate>`)
		assert.Contains(t, rss, `<category>tech</category>`)
		assert.Contains(t, rss, `<enclosure url="https://cdn.example.com/a1.png?w=300" type="image/png" length="0"></enclosure>`)
		assert.Contains(t, rss, `<category>business</category>`)
	})

	t.Run("single category", func(t *testing.T) {
		rss, err := gen.GenerateRSS(articles[:1], "tech")
		require.NoError(t, err)
		assert.Contains(t, rss, `<title>Headlines - tech</title>`)
		assert.Contains(t, rss, `href="https://example.com/rss/tech"`)
	})

	t.Run("order is preserved and output parses back", func(t *testing.T) {
		rss, err := gen.GenerateRSS(articles, "")
		require.NoError(t, err)

		var doc RSS
		require.NoError(t, xml.Unmarshal([]byte(rss), &doc))
		require.Len(t, doc.Channel.Items, 2)
		assert.Equal(t, "https://example.com/a1", doc.Channel.Items[0].Link)
		assert.Equal(t, "https://example.com/a2", doc.Channel.Items[1].Link)
		assert.Nil(t, doc.Channel.Items[1].Enclosure)
	})

	t.Run("empty list", func(t *testing.T) {
		rss, err := NewGenerator("http://localhost:8080", "News").GenerateRSS(nil, "")
		require.NoError(t, err)
		assert.Contains(t, rss, `<title>News - All Categories</title>`)
		assert.NotContains(t, rss, "<item>")
	})
}

func TestImageType(t *testing.T) {
	tbl := []struct {
		link, want string
	}{
		{"https://cdn.example.com/a.png", "image/png"},
		{"https://cdn.example.com/a.GIF", "image/gif"},
		{"https://cdn.example.com/a.jpg#frag", "image/jpeg"},
		{"https://cdn.example.com/image?id=1", "image/jpeg"},
		{"https://cdn.example.com/a.html", "image/jpeg"},
	}
	for _, tt := range tbl {
		t.Run(tt.link, func(t *testing.T) {
			assert.Equal(t, tt.want, imageType(tt.link))
		})
	}
}
