package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EntityOperationsCounter counts CRUD operations per entity type
	EntityOperationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "school_entity_operations_total",
			Help: "Total number of entity operations",
		},
		[]string{"entity", "operation"},
	)

	// TenantContextMissingCounter counts requests arriving without tenant claims
	TenantContextMissingCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "school_tenant_context_missing_total",
			Help: "Total number of requests without tenant context",
		},
	)

	// DuplicateEnrollmentCounter counts rejected duplicate enrollment attempts
	DuplicateEnrollmentCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "school_duplicate_enrollments_total",
			Help: "Total number of rejected duplicate enrollment attempts",
		},
	)

	// DbOperationDuration records duration of database operations in seconds
	DbOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "school_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)
)

// RecordEntityOperation increments the operation counter for an entity.
func RecordEntityOperation(entity, operation string) {
	EntityOperationsCounter.WithLabelValues(entity, operation).Inc()
}

// TrackDBOperation returns a function that observes the elapsed time of
// a database operation. Use with defer:
//
//	defer metrics.TrackDBOperation("insert")(time.Now())
func TrackDBOperation(operationType string) func(time.Time) {
	return func(start time.Time) {
		DbOperationDuration.WithLabelValues(operationType).Observe(time.Since(start).Seconds())
	}
}
