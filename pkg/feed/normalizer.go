package feed

import (
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/umputun/headlines/pkg/domain"
)

// Normalizer maps raw tagged items to articles. It has no side effects,
// the result depends only on the input and the clock.
type Normalizer struct {
	now func() time.Time
}

// NewNormalizer makes a normalizer, nil now means time.Now
func NewNormalizer(now func() time.Time) *Normalizer {
	if now == nil {
		now = time.Now
	}
	return &Normalizer{now: now}
}

// Normalize converts one item. Title and link are copied as is, a missing or
// unparsable date becomes the ingestion time.
func (n *Normalizer) Normalize(ti TaggedItem) domain.Article {
	now := n.now()
	category := ti.Source.Category
	if category == "" {
		category = domain.DefaultCategory
	}
	return domain.Article{
		Source:      ti.Source.Name,
		Category:    category,
		Title:       ti.Item.Title,
		Link:        ti.Item.Link,
		PublishedAt: publishedOr(ti.Item, now),
		ImageURL:    imageURL(ti.Item),
		FetchedAt:   now,
	}
}

// NormalizeAll converts items preserving order
func (n *Normalizer) NormalizeAll(items []TaggedItem) []domain.Article {
	res := make([]domain.Article, 0, len(items))
	for _, ti := range items {
		if ti.Item == nil {
			continue
		}
		res = append(res, n.Normalize(ti))
	}
	return res
}

// imageURL picks an image enclosure, then media:content url, else nothing
func imageURL(item *gofeed.Item) string {
	for _, enc := range item.Enclosures {
		if enc != nil && enc.URL != "" && strings.HasPrefix(strings.ToLower(enc.Type), "image") {
			return enc.URL
		}
	}
	if media, ok := item.Extensions["media"]; ok {
		for _, content := range media["content"] {
			if u := content.Attrs["url"]; u != "" {
				return u
			}
		}
	}
	return ""
}
