package domain

import "time"

// Article represents a normalized, store-ready news item.
// Link is the identity key across the whole store.
type Article struct {
	Source      string    `json:"source"`
	Category    string    `json:"category"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	PublishedAt time.Time `json:"published_at"`
	ImageURL    string    `json:"image_url,omitempty"` // empty means no image
	FetchedAt   time.Time `json:"fetched_at"`
}

// UpsertResult holds counts reported by a bulk upsert
type UpsertResult struct {
	Inserted int
	Modified int
}

// Total returns the number of inserted-or-modified records
func (r UpsertResult) Total() int {
	return r.Inserted + r.Modified
}
