// Package metrics provides centralized Prometheus metrics for the catalog.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Business metrics track catalog operations and inventory
var (
	// CatalogArticlesTotal tracks the number of stored articles per category.
	// Updated periodically from store counts, not incrementally.
	CatalogArticlesTotal = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_articles_total",
			Help: "Number of articles stored, per category",
		},
		[]string{"category"},
	)

	// CatalogOperationsTotal counts catalog operations by outcome
	CatalogOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_operations_total",
			Help: "Total number of catalog operations",
		},
		[]string{"operation", "outcome"},
	)
)

// Store metrics track document store performance
var (
	// StoreCommandDuration measures document store command duration
	StoreCommandDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_command_duration_seconds",
			Help:    "Document store command duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"command"},
	)

	// StoreCommandErrors counts document store command failures
	StoreCommandErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_command_errors_total",
			Help: "Total number of document store command failures",
		},
		[]string{"command"},
	)
)

// RecordStoreCommand records the duration of a document store command.
// Command should name the driver call (e.g. "insert_one", "find").
func RecordStoreCommand(command string, duration time.Duration) {
	StoreCommandDuration.WithLabelValues(command).Observe(duration.Seconds())
}

// RecordStoreCommandError records a failed document store command.
func RecordStoreCommandError(command string) {
	StoreCommandErrors.WithLabelValues(command).Inc()
}
