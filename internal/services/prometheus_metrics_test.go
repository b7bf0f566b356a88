package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg).(*PrometheusMetrics)

	metrics.IncrementCounter("transaction_recorded", map[string]string{"type": "expense"})
	metrics.IncrementCounter("transaction_recorded", map[string]string{"type": "expense"})
	metrics.IncrementCounter("transaction_recorded", map[string]string{"type": "income"})
	metrics.IncrementCounter("transaction_recorded", nil)
	metrics.IncrementCounter("transaction_deleted", nil)
	metrics.IncrementCounter("limit_exceeded", map[string]string{"scope": "budget"})
	metrics.IncrementCounter("request_completed", map[string]string{"status": "error"})
	metrics.IncrementCounter("unknown_metric", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.transactionsRecorded.WithLabelValues("expense")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.transactionsRecorded.WithLabelValues("income")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.transactionsChanged.WithLabelValues("delete")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.limitsExceeded.WithLabelValues("budget")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.requestsTotal.WithLabelValues("error")))
}

func TestPrometheusMetrics_Histograms(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg)

	metrics.RecordProcessingTime("request", 12*time.Millisecond)
	metrics.RecordProcessingTime("period_statistics", time.Second)
	metrics.RecordGauge("transaction_amount", 1200, map[string]string{"type": "expense"})
	metrics.RecordGauge("balance", 1, nil)

	count, err := testutil.GatherAndCount(reg,
		"finbot_request_duration_milliseconds",
		"finbot_report_duration_seconds",
		"finbot_transaction_amount",
	)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestPrometheusMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPrometheusMetrics(prometheus.NewRegistry())
		NewPrometheusMetrics(prometheus.NewRegistry())
	})
}
