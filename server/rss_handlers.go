package server

import (
	"net/http"
	"strconv"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/headlines/pkg/domain"
	"github.com/umputun/headlines/pkg/feed"
)

// defaultRSSLimit is the number of latest articles republished by rss endpoints
const defaultRSSLimit = 100

// rssHandler republishes the latest stored articles as RSS.
// Supports both /rss/{category} and /rss?category=... patterns.
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	if category == "" {
		category = r.URL.Query().Get("category")
	}

	limit := defaultRSSLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = min(n, maxArticlesLimit)
		}
	}

	var articles []domain.Article
	var err error
	if category == "" {
		articles, err = s.aggregator.GetArticles(r.Context(), limit)
	} else {
		articles, err = s.aggregator.GetCategoryArticles(r.Context(), category, limit)
	}
	if err != nil {
		lgr.Printf("[ERROR] failed to get articles for RSS: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	rss, err := feed.NewGenerator(baseURL(r), "Headlines").GenerateRSS(articles, category)
	if err != nil {
		lgr.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		lgr.Printf("[WARN] failed to write RSS response: %v", err)
	}
}

// baseURL builds the public address of the server from the request, honoring a reverse proxy
func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if p := r.Header.Get("X-Forwarded-Proto"); p == "http" || p == "https" {
		scheme = p
	}
	return scheme + "://" + r.Host
}
