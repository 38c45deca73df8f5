// Package metrics exposes Prometheus instrumentation for the watch cycle.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "listing_watcher"

var (
	CyclesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cycles_total",
			Help:      "Total number of completed watch cycles",
		},
	)

	CyclePanicsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cycle_panics_total",
			Help:      "Watch cycles aborted by a recovered panic",
		},
	)

	CycleDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cycle_duration_seconds",
			Help:      "Duration of one fetch-merge-notify pass",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
		},
	)

	// FetchErrorsTotal counts failed fetches by source
	FetchErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_errors_total",
			Help:      "Total number of failed source fetches",
		},
		[]string{"source"},
	)

	// ListingsFetchedTotal counts accepted listings by source
	ListingsFetchedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "listings_fetched_total",
			Help:      "Total number of listings accepted from each source",
		},
		[]string{"source"},
	)

	NewListingsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "new_listings_total",
			Help:      "Total number of listings not seen before",
		},
	)

	NotifyErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notify_errors_total",
			Help:      "Total number of failed notifications",
		},
	)

	// StoreErrorsTotal counts seen-set failures by operation (load, save)
	StoreErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_errors_total",
			Help:      "Total number of seen-set load/save failures",
		},
		[]string{"op"},
	)

	SeenIDs = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "seen_ids",
			Help:      "Number of listing IDs in the seen set",
		},
	)
)
