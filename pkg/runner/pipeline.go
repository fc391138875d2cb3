// Package runner executes aggregation runs: fetch all sources, normalize, persist in one batch.
package runner

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/headlines/pkg/domain"
	"github.com/umputun/headlines/pkg/feed"
	"github.com/umputun/headlines/pkg/metrics"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/sweeper.go -pkg mocks -skip-ensure -fmt goimports . Sweeper
//go:generate moq -out mocks/runner.go -pkg mocks -skip-ensure -fmt goimports . Runner

// Store is the persistence gateway used by a run
type Store interface {
	Ping(ctx context.Context) error
	BulkUpsertByLink(ctx context.Context, articles []domain.Article) (domain.UpsertResult, error)
}

// Sweeper visits all sources and returns their raw items
type Sweeper interface {
	Sweep(ctx context.Context, sources []domain.Source) ([]feed.TaggedItem, feed.SweepStats, error)
}

// Catalog provides the ordered list of sources
type Catalog interface {
	Sources() []domain.Source
}

// Pipeline is one run: fetch, normalize and persist
type Pipeline struct {
	catalog    Catalog
	sweeper    Sweeper
	normalizer *feed.Normalizer
	store      Store
}

// NewPipeline makes a pipeline, nil normalizer means the default one
func NewPipeline(catalog Catalog, sweeper Sweeper, normalizer *feed.Normalizer, store Store) *Pipeline {
	if normalizer == nil {
		normalizer = feed.NewNormalizer(nil)
	}
	return &Pipeline{catalog: catalog, sweeper: sweeper, normalizer: normalizer, store: store}
}

// Run fetches every source and persists the result in one bulk upsert.
// It returns the number of inserted or modified articles. If persistence fails the error is logged
// and the number of collected articles is returned instead.
func (p *Pipeline) Run(ctx context.Context) (int, error) {
	if err := p.store.Ping(ctx); err != nil {
		return 0, fmt.Errorf("connect to store: %w", err)
	}

	sources := p.catalog.Sources()
	st := time.Now()
	items, stats, err := p.sweeper.Sweep(ctx, sources)
	if err != nil {
		return 0, fmt.Errorf("fetch feeds: %w", err)
	}
	lgr.Printf("[INFO] fetched %d items from %d sources in %v, %d failed (%d expected)",
		stats.Items, stats.Sources, time.Since(st).Truncate(time.Millisecond), stats.Failed, stats.Suppressed)

	articles := p.normalizer.NormalizeAll(items)
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})

	if len(articles) == 0 {
		lgr.Printf("[INFO] no articles collected")
		return 0, nil
	}

	res, err := p.store.BulkUpsertByLink(ctx, articles)
	if err != nil {
		lgr.Printf("[WARN] failed to save %d articles: %v", len(articles), err)
		return len(articles), nil
	}
	metrics.ArticlesUpserted.Add(float64(res.Total()))
	lgr.Printf("[DEBUG] saved articles, inserted %d, modified %d", res.Inserted, res.Modified)
	return res.Total(), nil
}
