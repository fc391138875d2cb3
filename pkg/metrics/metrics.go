// Package metrics holds process-wide prometheus collectors of the aggregation pipeline
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RunsTotal counts finished runs by outcome status
	RunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "headlines_runs_total",
		Help: "The total number of aggregation runs by outcome",
	}, []string{"status"})

	// SourceFailures counts skipped sources by failure kind
	SourceFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "headlines_source_failures_total",
		Help: "The total number of feed sources skipped because of a failure",
	}, []string{"kind"})

	// ArticlesUpserted counts articles written or refreshed in storage
	ArticlesUpserted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "headlines_articles_upserted_total",
		Help: "The total number of articles inserted or modified in storage",
	})

	// RunDuration observes wall time of a whole run
	RunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "headlines_run_duration_seconds",
		Help:    "Duration of aggregation runs",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10), // 1s to ~8.5m
	})
)

// Handler returns the http handler exposing the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
