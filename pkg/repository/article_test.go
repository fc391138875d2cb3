package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/headlines/pkg/domain"
)

func testArticles(fetchedAt time.Time, links ...string) []domain.Article {
	res := make([]domain.Article, 0, len(links))
	for i, link := range links {
		res = append(res, domain.Article{
			Source:      "Example",
			Category:    "world",
			Title:       fmt.Sprintf("title %d", i),
			Link:        link,
			PublishedAt: time.Date(2024, 1, i+1, 12, 0, 0, 0, time.UTC),
			FetchedAt:   fetchedAt,
		})
	}
	return res
}

func TestArticleRepository_BulkUpsertByLink(t *testing.T) {
	repos, _ := setupTestDB(t)
	ctx := context.Background()
	first := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	clock := first
	repos.Article.now = func() time.Time { return clock }

	batch := testArticles(first.Add(-time.Hour), "https://example.com/1", "https://example.com/2", "https://example.com/3")
	batch[0].ImageURL = "https://example.com/1.jpg"

	res, err := repos.Article.BulkUpsertByLink(ctx, batch)
	require.NoError(t, err)
	assert.Equal(t, domain.UpsertResult{Inserted: 3, Modified: 0}, res)
	assert.Equal(t, 3, res.Total())

	art, err := repos.Article.GetArticle(ctx, "https://example.com/1")
	require.NoError(t, err)
	assert.True(t, first.Equal(art.FetchedAt), "fetched_at is set by the store, got %v", art.FetchedAt)

	t.Run("same batch again only refreshes", func(t *testing.T) {
		clock = first.Add(2 * time.Hour)

		res, err := repos.Article.BulkUpsertByLink(ctx, batch)
		require.NoError(t, err)
		assert.Equal(t, domain.UpsertResult{Inserted: 0, Modified: 3}, res)

		count, err := repos.Article.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		for _, a := range batch {
			art, err := repos.Article.GetArticle(ctx, a.Link)
			require.NoError(t, err)
			assert.True(t, clock.Equal(art.FetchedAt), "fetched_at advanced to %v, got %v", clock, art.FetchedAt)
			assert.Equal(t, a.Title, art.Title)
			assert.True(t, a.PublishedAt.Equal(art.PublishedAt))
		}

		art, err := repos.Article.GetArticle(ctx, "https://example.com/1")
		require.NoError(t, err)
		assert.Equal(t, "title 0", art.Title)
		assert.Equal(t, "https://example.com/1.jpg", art.ImageURL)
		assert.True(t, batch[0].PublishedAt.Equal(art.PublishedAt))
	})

	t.Run("mixed batch overwrites fields", func(t *testing.T) {
		mixed := testArticles(first.Add(4*time.Hour), "https://example.com/2", "https://example.com/4")
		mixed[0].Title = "updated title"
		mixed[0].Category = "business"

		res, err := repos.Article.BulkUpsertByLink(ctx, mixed)
		require.NoError(t, err)
		assert.Equal(t, domain.UpsertResult{Inserted: 1, Modified: 1}, res)

		art, err := repos.Article.GetArticle(ctx, "https://example.com/2")
		require.NoError(t, err)
		assert.Equal(t, "updated title", art.Title)
		assert.Equal(t, "business", art.Category)
		assert.Empty(t, art.ImageURL)
	})

	t.Run("duplicate links in one batch", func(t *testing.T) {
		dup := testArticles(first, "https://example.com/dup", "https://example.com/dup")
		res, err := repos.Article.BulkUpsertByLink(ctx, dup)
		require.NoError(t, err)
		assert.Equal(t, domain.UpsertResult{Inserted: 1, Modified: 1}, res)

		art, err := repos.Article.GetArticle(ctx, "https://example.com/dup")
		require.NoError(t, err)
		assert.Equal(t, "title 1", art.Title, "last one wins")
	})

	t.Run("empty batch", func(t *testing.T) {
		res, err := repos.Article.BulkUpsertByLink(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, domain.UpsertResult{}, res)
	})
}

func TestArticleRepository_BulkUpsertByLink_Defaults(t *testing.T) {
	repos, _ := setupTestDB(t)
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	repos.Article.now = func() time.Time { return now }

	_, err := repos.Article.BulkUpsertByLink(context.Background(), []domain.Article{{Source: "s", Category: "c",
		Title: "no times", Link: "https://example.com/x"}})
	require.NoError(t, err)

	art, err := repos.Article.GetArticle(context.Background(), "https://example.com/x")
	require.NoError(t, err)
	assert.True(t, now.Equal(art.FetchedAt))
	assert.True(t, now.Equal(art.PublishedAt))
}

func TestArticleRepository_BulkUpsertByLink_Failure(t *testing.T) {
	repos, _ := setupTestDB(t)
	require.NoError(t, repos.Close())

	_, err := repos.Article.BulkUpsertByLink(context.Background(), testArticles(time.Now(), "https://example.com/1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bulk upsert 1 articles")
	assert.True(t, errors.Is(err, errCritical), "closed db is not retried")
}

func TestArticleRepository_ConcurrentWriters(t *testing.T) {
	repos, dsn := setupTestDB(t)
	other, err := NewRepositories(context.Background(), Config{DSN: dsn})
	require.NoError(t, err)
	defer other.Close()

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	links := make([]string, 0, 20)
	for j := 0; j < 20; j++ {
		links = append(links, fmt.Sprintf("https://example.com/shared/%d", j))
	}
	for _, r := range []*ArticleRepository{repos.Article, other.Article} {
		wg.Add(1)
		go func(r *ArticleRepository) {
			defer wg.Done()
			_, err := r.BulkUpsertByLink(context.Background(), testArticles(time.Now(), links...))
			errs <- err
		}(r)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	count, err := repos.Article.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 20, count, "same links from both writers stored once")
}

func TestArticleRepository_GetArticles(t *testing.T) {
	repos, _ := setupTestDB(t)
	ctx := context.Background()

	arts := testArticles(time.Now(), "https://example.com/a", "https://example.com/b", "https://example.com/c")
	// stored out of order, with a non-UTC zone on one of them
	arts[0].PublishedAt = time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)
	arts[1].PublishedAt = time.Date(2024, 1, 6, 3, 0, 0, 0, time.FixedZone("EST", -5*3600)) // 08:00 UTC
	arts[2].PublishedAt = time.Date(2024, 1, 6, 7, 0, 0, 0, time.UTC)
	_, err := repos.Article.BulkUpsertByLink(ctx, arts)
	require.NoError(t, err)

	all, err := repos.Article.GetArticles(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "https://example.com/b", all[0].Link)
	assert.Equal(t, "https://example.com/c", all[1].Link)
	assert.Equal(t, "https://example.com/a", all[2].Link)
	assert.Equal(t, time.UTC, all[0].PublishedAt.Location())

	limited, err := repos.Article.GetArticles(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "https://example.com/b", limited[0].Link)

	_, err = repos.Article.GetArticle(ctx, "https://example.com/missing")
	require.Error(t, err)
}

func TestArticleRepository_GetCategoryArticles(t *testing.T) {
	repos, _ := setupTestDB(t)
	ctx := context.Background()

	arts := testArticles(time.Now(), "https://example.com/a", "https://example.com/b", "https://example.com/c")
	arts[1].Category = "tech"
	_, err := repos.Article.BulkUpsertByLink(ctx, arts)
	require.NoError(t, err)

	world, err := repos.Article.GetCategoryArticles(ctx, "world", 0)
	require.NoError(t, err)
	require.Len(t, world, 2)
	assert.Equal(t, "https://example.com/c", world[0].Link)
	assert.Equal(t, "https://example.com/a", world[1].Link)

	tech, err := repos.Article.GetCategoryArticles(ctx, "tech", 10)
	require.NoError(t, err)
	require.Len(t, tech, 1)
	assert.Equal(t, "https://example.com/b", tech[0].Link)

	limited, err := repos.Article.GetCategoryArticles(ctx, "world", 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "https://example.com/c", limited[0].Link)

	none, err := repos.Article.GetCategoryArticles(ctx, "sports", 0)
	require.NoError(t, err)
	assert.Empty(t, none)

	require.NoError(t, repos.Close())
	_, err = repos.Article.GetCategoryArticles(ctx, "world", 0)
	require.ErrorContains(t, err, "get articles of world")
}
