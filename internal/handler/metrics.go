package handler

import (
	"github.com/SergeyBogomolovv/driver-dashboard/pkg/cache"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	assignmentsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "driver_dashboard",
			Subsystem: "kafka_consumer",
			Name:      "assignments_processed_total",
			Help:      "Total number of successfully ingested order assignments",
		},
	)

	assignmentsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "driver_dashboard",
			Subsystem: "kafka_consumer",
			Name:      "assignments_failed_total",
			Help:      "Total number of failed assignment processing attempts",
		},
	)

	assignmentsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "driver_dashboard",
			Subsystem: "kafka_consumer",
			Name:      "assignments_dlq_total",
			Help:      "Total number of assignments written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "driver_dashboard",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	assignmentProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "driver_dashboard",
			Subsystem: "kafka_consumer",
			Name:      "assignment_processing_duration_seconds",
			Help:      "Histogram of assignment processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

var (
	deliveriesConfirmed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "driver_dashboard",
			Subsystem: "deliveries",
			Name:      "deliveries_confirmed_total",
			Help:      "Total number of confirmed deliveries",
		},
	)

	deliveriesFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "driver_dashboard",
			Subsystem: "deliveries",
			Name:      "deliveries_failed_total",
			Help:      "Total number of delivery confirmations rejected by the order store",
		},
	)

	deliveryCommitDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "driver_dashboard",
			Subsystem: "deliveries",
			Name:      "delivery_commit_duration_seconds",
			Help:      "Histogram of delivery confirmation durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

type sessionCounter interface {
	Len() int
}

type cacheStats interface {
	Stats() cache.Stats
	Size() int
}

// RegisterMetrics регистрирует метрики обработчиков. Число открытых сессий
// и счётчики кэша снимаются в момент сбора.
func RegisterMetrics(sessions sessionCounter, c cacheStats) {
	prometheus.MustRegister(
		assignmentsProcessed,
		assignmentsFailed,
		assignmentsDLQ,
		commitErrors,
		assignmentProcessingDuration,

		deliveriesConfirmed,
		deliveriesFailed,
		deliveryCommitDuration,

		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: "driver_dashboard",
				Subsystem: "sessions",
				Name:      "open_sessions",
				Help:      "Number of open view sessions",
			},
			func() float64 { return float64(sessions.Len()) },
		),

		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: "driver_dashboard",
				Subsystem: "cache",
				Name:      "entries",
				Help:      "Number of entries in the read cache",
			},
			func() float64 { return float64(c.Size()) },
		),
		prometheus.NewCounterFunc(
			prometheus.CounterOpts{
				Namespace: "driver_dashboard",
				Subsystem: "cache",
				Name:      "hits_total",
				Help:      "Total number of read cache hits",
			},
			func() float64 { return float64(c.Stats().Hits) },
		),
		prometheus.NewCounterFunc(
			prometheus.CounterOpts{
				Namespace: "driver_dashboard",
				Subsystem: "cache",
				Name:      "misses_total",
				Help:      "Total number of read cache misses",
			},
			func() float64 { return float64(c.Stats().Misses) },
		),
		prometheus.NewCounterFunc(
			prometheus.CounterOpts{
				Namespace: "driver_dashboard",
				Subsystem: "cache",
				Name:      "evictions_total",
				Help:      "Total number of entries evicted by capacity",
			},
			func() float64 { return float64(c.Stats().Evictions) },
		),
	)
}
