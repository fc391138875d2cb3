package server

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/headlines/pkg/domain"
	"github.com/umputun/headlines/server/mocks"
)

func TestServer_RSSHandler(t *testing.T) {
	pub := time.Date(2024, 1, 6, 9, 0, 0, 0, time.UTC)
	agg := &mocks.AggregatorMock{
		GetArticlesFunc: func(ctx context.Context, limit int) ([]domain.Article, error) {
			return []domain.Article{{Source: "Example", Category: "world", Title: "World News",
				Link: "https://example.com/world", PublishedAt: pub}}, nil
		},
		GetCategoryArticlesFunc: func(ctx context.Context, category string, limit int) ([]domain.Article, error) {
			return []domain.Article{{Source: "Example", Category: category, Title: "Tech News",
				Link: "https://example.com/tech", PublishedAt: pub, ImageURL: "https://cdn.example.com/t.png"}}, nil
		},
	}
	srv := New(testConfig(":8080"), agg, "1.0.0", false)

	t.Run("all categories", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/rss", http.NoBody)
		rr := httptest.NewRecorder()
		srv.router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/rss+xml; charset=utf-8", rr.Header().Get("Content-Type"))
		body := rr.Body.String()
		assert.Contains(t, body, `<title>Headlines - All Categories</title>`)
		assert.Contains(t, body, `href="http://example.com/rss"`)
		assert.Contains(t, body, `<title>World News</title>`)
		require.Len(t, agg.GetArticlesCalls(), 1)
		assert.Equal(t, defaultRSSLimit, agg.GetArticlesCalls()[0].Limit)
	})

	t.Run("category from path", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/rss/tech?limit=5", http.NoBody)
		rr := httptest.NewRecorder()
		srv.router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		body := rr.Body.String()
		assert.Contains(t, body, `<title>Headlines - tech</title>`)
		assert.Contains(t, body, `<title>Tech News</title>`)
		assert.Contains(t, body, `<enclosure url="https://cdn.example.com/t.png" type="image/png" length="0"></enclosure>`)
		calls := agg.GetCategoryArticlesCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "tech", calls[0].Category)
		assert.Equal(t, 5, calls[0].Limit)
	})

	t.Run("category from query, bad limit ignored", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/rss?category=business&limit=abc", http.NoBody)
		rr := httptest.NewRecorder()
		srv.router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		calls := agg.GetCategoryArticlesCalls()
		require.Len(t, calls, 2)
		assert.Equal(t, "business", calls[1].Category)
		assert.Equal(t, defaultRSSLimit, calls[1].Limit)
	})
}

func TestServer_RSSHandlerError(t *testing.T) {
	agg := &mocks.AggregatorMock{
		GetArticlesFunc: func(ctx context.Context, limit int) ([]domain.Article, error) {
			return nil, errors.New("db error")
		},
	}
	srv := New(testConfig(":8080"), agg, "1.0.0", false)

	req := httptest.NewRequest(http.MethodGet, "/rss", http.NoBody)
	rr := httptest.NewRecorder()
	srv.router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Failed to generate RSS feed")
}

func TestBaseURL(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://news.example.com/rss", http.NoBody)
	assert.Equal(t, "http://news.example.com", baseURL(req))

	req.TLS = &tls.ConnectionState{}
	assert.Equal(t, "https://news.example.com", baseURL(req))

	req = httptest.NewRequest(http.MethodGet, "http://news.example.com/rss", http.NoBody)
	req.Header.Set("X-Forwarded-Proto", "https")
	assert.Equal(t, "https://news.example.com", baseURL(req))

	req.Header.Set("X-Forwarded-Proto", "gopher")
	assert.Equal(t, "http://news.example.com", baseURL(req))
}
