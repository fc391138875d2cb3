package feed

import (
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/headlines/pkg/domain"
)

func TestNormalizer_Normalize(t *testing.T) {
	now := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	n := NewNormalizer(func() time.Time { return now })
	published := time.Date(2024, 1, 31, 8, 30, 0, 0, time.UTC)

	t.Run("full item", func(t *testing.T) {
		art := n.Normalize(TaggedItem{
			Source: domain.Source{Name: "Example", URL: "https://example.com/rss", Category: "science"},
			Item: &gofeed.Item{
				Title:           "  Title with spaces ",
				Link:            "https://example.com/a?utm=1",
				PublishedParsed: &published,
				Enclosures: []*gofeed.Enclosure{
					{URL: "https://example.com/a.mp3", Type: "audio/mpeg"},
					{URL: "https://example.com/a.jpg", Type: "image/jpeg"},
				},
			},
		})
		assert.Equal(t, domain.Article{
			Source:      "Example",
			Category:    "science",
			Title:       "  Title with spaces ",
			Link:        "https://example.com/a?utm=1",
			PublishedAt: published,
			ImageURL:    "https://example.com/a.jpg",
			FetchedAt:   now,
		}, art)
	})

	t.Run("defaults", func(t *testing.T) {
		art := n.Normalize(TaggedItem{
			Source: domain.Source{Name: "Example", URL: "https://example.com/rss"},
			Item:   &gofeed.Item{Title: "no date", Link: "https://example.com/b", Published: "yesterday-ish"},
		})
		assert.Equal(t, domain.DefaultCategory, art.Category)
		assert.Equal(t, now, art.PublishedAt, "unparsable date becomes ingestion time")
		assert.Empty(t, art.ImageURL)
		assert.Equal(t, now, art.FetchedAt)
	})

	t.Run("media content", func(t *testing.T) {
		art := n.Normalize(TaggedItem{
			Source: domain.Source{Name: "Example"},
			Item: &gofeed.Item{
				Title: "media",
				Link:  "https://example.com/c",
				Extensions: ext.Extensions{
					"media": map[string][]ext.Extension{
						"content": {{Name: "content", Attrs: map[string]string{"url": "https://example.com/c.png", "medium": "image"}}},
					},
				},
			},
		})
		assert.Equal(t, "https://example.com/c.png", art.ImageURL)
	})

	t.Run("updated date fallback", func(t *testing.T) {
		updated := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
		art := n.Normalize(TaggedItem{Item: &gofeed.Item{Link: "https://example.com/d", UpdatedParsed: &updated}})
		assert.Equal(t, updated, art.PublishedAt)
	})
}

func TestNormalizer_NormalizeAll(t *testing.T) {
	n := NewNormalizer(nil)
	src := domain.Source{Name: "s", Category: "world"}
	res := n.NormalizeAll([]TaggedItem{
		{Source: src, Item: &gofeed.Item{Link: "https://example.com/1"}},
		{Source: src},
		{Source: src, Item: &gofeed.Item{Link: "https://example.com/2"}},
	})
	require.Len(t, res, 2)
	assert.Equal(t, "https://example.com/1", res[0].Link)
	assert.Equal(t, "https://example.com/2", res[1].Link)
	assert.False(t, res[0].FetchedAt.IsZero())

	assert.Empty(t, n.NormalizeAll(nil))
}
