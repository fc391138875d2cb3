package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/headlines/pkg/service"
)

// maxArticlesLimit caps a single articles response
const maxArticlesLimit = 1000

// statusHandler returns process role, version and the aggregation status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	st, err := s.aggregator.Status(r.Context())
	if err != nil {
		lgr.Printf("[WARN] failed to get status: %v", err)
		renderError(w, r, errors.New("status unavailable"), http.StatusServiceUnavailable)
		return
	}
	renderJSON(w, r, http.StatusOK, struct {
		Status  string         `json:"status"`
		Version string         `json:"version"`
		Time    time.Time      `json:"time"`
		Service service.Status `json:"service"`
	}{Status: "ok", Version: s.version, Time: time.Now().UTC(), Service: st})
}

// articlesHandler returns stored articles, most recently published first.
// The limit query parameter is optional and capped by maxArticlesLimit.
func (s *Server) articlesHandler(w http.ResponseWriter, r *http.Request) {
	limit := maxArticlesLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			renderError(w, r, errors.New("invalid limit"), http.StatusBadRequest)
			return
		}
		limit = min(n, maxArticlesLimit)
	}

	articles, err := s.aggregator.GetArticles(r.Context(), limit)
	if err != nil {
		lgr.Printf("[ERROR] failed to get articles: %v", err)
		renderError(w, r, errors.New("failed to get articles"), http.StatusInternalServerError)
		return
	}
	if articles == nil {
		renderJSON(w, r, http.StatusOK, []any{})
		return
	}
	renderJSON(w, r, http.StatusOK, articles)
}
