package feed

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/mmcdole/gofeed"

	"github.com/umputun/headlines/pkg/domain"
	"github.com/umputun/headlines/pkg/metrics"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher

// Fetcher retrieves and parses one feed document
type Fetcher interface {
	Parse(ctx context.Context, url string) (*gofeed.Feed, error)
}

// TaggedItem is a raw parsed entry with the source it came from
type TaggedItem struct {
	Source domain.Source
	Item   *gofeed.Item
}

// SweepStats summarizes one pass over the registry
type SweepStats struct {
	Sources    int // sources visited
	Failed     int // sources skipped because of any failure
	Suppressed int // part of Failed with an expected failure kind
	Items      int // items kept after the per-source cap
}

// Executor visits sources one at a time with a fixed pause after each.
// A failing source is skipped, it never aborts the sweep.
type Executor struct {
	fetcher  Fetcher
	pacer    *Pacer
	maxItems int
	now      func() time.Time
}

// ExecutorParams defines executor dependencies and settings
type ExecutorParams struct {
	Fetcher  Fetcher
	Delay    time.Duration
	MaxItems int                                              // most recent items kept per source, default 5
	Sleep    func(ctx context.Context, d time.Duration) error // optional, for tests
	Now      func() time.Time                                 // optional, for tests
}

// NewExecutor makes an executor
func NewExecutor(p ExecutorParams) *Executor {
	if p.MaxItems <= 0 {
		p.MaxItems = 5
	}
	if p.Now == nil {
		p.Now = time.Now
	}
	pacer := NewPacer(p.Delay)
	if p.Sleep != nil {
		pacer.Sleep = p.Sleep
	}
	return &Executor{fetcher: p.Fetcher, pacer: pacer, maxItems: p.MaxItems, now: p.Now}
}

// Sweep fetches all sources in order and returns their capped items.
// The returned error is set only if ctx was canceled before the sweep finished,
// items collected so far are returned anyway.
func (e *Executor) Sweep(ctx context.Context, sources []domain.Source) ([]TaggedItem, SweepStats, error) {
	stats := SweepStats{}
	var res []TaggedItem

	err := e.pacer.Each(ctx, len(sources), func(i int) {
		src := sources[i]
		stats.Sources++

		items, err := e.fetchSource(ctx, src)
		if err != nil {
			stats.Failed++
			metrics.SourceFailures.WithLabelValues(err.Kind.String()).Inc()
			if err.Kind.Expected() {
				stats.Suppressed++
				lgr.Printf("[DEBUG] skip %s, %s", src.Identifier(), err.Kind)
				return
			}
			lgr.Printf("[WARN] failed to fetch feed for %s: %v", src.Identifier(), err.Err)
			return
		}

		for _, item := range e.latest(items) {
			res = append(res, TaggedItem{Source: src, Item: item})
		}
		stats.Items = len(res)
	})

	if err != nil {
		return res, stats, fmt.Errorf("sweep interrupted after %d of %d sources: %w", stats.Sources, len(sources), err)
	}
	return res, stats, nil
}

// fetchSource fetches and parses one source, a panic in parsing is contained to this source
func (e *Executor) fetchSource(ctx context.Context, src domain.Source) (items []*gofeed.Item, srcErr *SourceError) {
	defer func() {
		if r := recover(); r != nil {
			items, srcErr = nil, &SourceError{Source: src, Kind: KindUnexpected, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	lgr.Printf("[DEBUG] fetching %s", src.URL)
	feed, err := e.fetcher.Parse(ctx, src.URL)
	if err != nil {
		return nil, &SourceError{Source: src, Kind: Classify(err), Err: err}
	}
	if feed == nil {
		return nil, nil
	}
	return feed.Items, nil
}

// latest returns up to maxItems most recent items, undated items count as fetched now
func (e *Executor) latest(items []*gofeed.Item) []*gofeed.Item {
	now := e.now()
	res := make([]*gofeed.Item, 0, len(items))
	for _, item := range items {
		if item != nil {
			res = append(res, item)
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		return publishedOr(res[i], now).After(publishedOr(res[j], now))
	})
	if len(res) > e.maxItems {
		res = res[:e.maxItems]
	}
	return res
}

// publishedOr returns the item's publish time, or its update time, or fallback
func publishedOr(item *gofeed.Item, fallback time.Time) time.Time {
	if item.PublishedParsed != nil && !item.PublishedParsed.IsZero() {
		return *item.PublishedParsed
	}
	if item.UpdatedParsed != nil && !item.UpdatedParsed.IsZero() {
		return *item.UpdatedParsed
	}
	return fallback
}
