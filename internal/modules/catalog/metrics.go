package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	catalogProducts = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "closet_catalog_products",
		Help: "Number of products in the current catalog snapshot",
	})
	pipelineRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "closet_pipeline_runs_total",
		Help: "Filter-and-sort runs by filter dimension and sort key",
	}, []string{"filter", "sort"})
	pipelineResults = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "closet_pipeline_result_size",
		Help:    "Number of products returned by a filter-and-sort run",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10),
	})
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "closet_view_cache_hits_total",
		Help: "Product lists served from the view cache",
	})
)

func labelOrNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
