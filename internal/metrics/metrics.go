package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"

	StatusSuccess   = "success"
	StatusFailed    = "failed"
	StatusDuplicate = "duplicate"
	StatusDropped   = "dropped"
)

type Metrics struct {
	IdentifyRequests  *prometheus.CounterVec
	IdentifySeconds   prometheus.Histogram
	EventsPublished   *prometheus.CounterVec
	AuditProcessed    *prometheus.CounterVec
	AuditBatchSeconds prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		IdentifyRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "building_identify_requests_total",
			Help: "Total number of identify requests by outcome.",
		}, []string{"outcome"}),
		IdentifySeconds: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "building_identify_duration_seconds",
			Help:    "Duration of identify requests that passed validation.",
			Buckets: prometheus.DefBuckets,
		}),
		EventsPublished: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "building_identify_events_published_total",
			Help: "Identification events published to the stream by status.",
		}, []string{"status"}),
		AuditProcessed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "building_audit_events_processed_total",
			Help: "Identification events handled by the audit worker by status.",
		}, []string{"status"}),
		AuditBatchSeconds: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "building_audit_batch_duration_seconds",
			Help:    "Time spent processing one batch of stream messages.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
