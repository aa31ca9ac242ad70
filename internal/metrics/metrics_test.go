package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/building-identifier/internal/metrics"
)

func TestNewMetrics_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics(reg)

	m.IdentifyRequests.WithLabelValues(metrics.OutcomeOK).Inc()
	m.IdentifyRequests.WithLabelValues(metrics.OutcomeInvalid).Add(2)
	m.EventsPublished.WithLabelValues(metrics.StatusSuccess).Inc()
	m.AuditProcessed.WithLabelValues(metrics.StatusDuplicate).Inc()
	m.IdentifySeconds.Observe(0.01)
	m.AuditBatchSeconds.Observe(0.2)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.IdentifyRequests.WithLabelValues(metrics.OutcomeOK)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.IdentifyRequests.WithLabelValues(metrics.OutcomeInvalid)))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 5)
}

func TestNewMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.NewMetrics(prometheus.NewRegistry())
		metrics.NewMetrics(prometheus.NewRegistry())
	})
}
