package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// httpRequestsTotal counts requests by route template and status code
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "terrapath_http_requests_total",
		Help: "Total HTTP requests by route and status code",
	}, []string{"route", "code"})

	// routeSearchTotal counts route searches by outcome
	routeSearchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "terrapath_route_search_total",
		Help: "Total route searches by result",
	}, []string{"result"}) // ok, no_path, timeout, invalid, error

	// routeSearchDuration tracks end-to-end planning latency
	routeSearchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "terrapath_route_search_duration_seconds",
		Help:    "Route planning duration in seconds, grid build included",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3s
	})

	// routeExpansions tracks how many cells each successful search closed
	routeExpansions = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "terrapath_route_expansions",
		Help:    "Cells expanded per successful search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 12),
	})

	// gridCells tracks the size of grids submitted to the API
	gridCells = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "terrapath_grid_cells",
		Help:    "Cells per submitted label grid",
		Buckets: prometheus.ExponentialBuckets(16, 4, 10),
	})
)

// observeOutcome records one planning result.
func observeOutcome(p planOutcome) {
	routeSearchTotal.WithLabelValues(p.result).Inc()
	routeSearchDuration.Observe(p.elapsed.Seconds())
	if p.expanded > 0 {
		routeExpansions.Observe(float64(p.expanded))
	}
}
