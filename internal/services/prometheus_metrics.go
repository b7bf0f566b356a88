package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsRecorded *prometheus.CounterVec
	transactionsChanged  *prometheus.CounterVec
	transactionAmount    *prometheus.HistogramVec
	categoriesCreated    prometheus.Counter
	membershipChanges    *prometheus.CounterVec
	usersRegistered      prometheus.Counter
	limitsExceeded       *prometheus.CounterVec
	requestsTotal        *prometheus.CounterVec
	requestDuration      prometheus.Histogram
	reportDuration       prometheus.Histogram
}

// NewPrometheusMetrics registers the finance metrics with reg.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		transactionsRecorded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finbot_transactions_recorded_total",
				Help: "Total number of transactions recorded",
			},
			[]string{"type"},
		),
		transactionsChanged: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finbot_transactions_changed_total",
				Help: "Total number of transactions updated or deleted",
			},
			[]string{"operation"},
		),
		transactionAmount: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finbot_transaction_amount",
				Help:    "Recorded transaction amount in the user's currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
			[]string{"type"},
		),
		categoriesCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "finbot_categories_created_total",
				Help: "Total number of shared categories created",
			},
		),
		membershipChanges: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finbot_category_membership_changes_total",
				Help: "Total number of category membership edges added or removed",
			},
			[]string{"operation"},
		),
		usersRegistered: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "finbot_users_registered_total",
				Help: "Total number of users registered on first contact",
			},
		),
		limitsExceeded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finbot_limits_exceeded_total",
				Help: "Total number of budget or spending limit checks that reported an excess",
			},
			[]string{"scope"},
		),
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finbot_requests_total",
				Help: "Total number of units of work by outcome",
			},
			[]string{"status"},
		),
		requestDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "finbot_request_duration_milliseconds",
				Help:    "Unit of work duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		reportDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "finbot_report_duration_seconds",
				Help:    "Period statistics duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "transaction_recorded":
		if transactionType := tags["type"]; transactionType != "" {
			m.transactionsRecorded.WithLabelValues(transactionType).Inc()
		}
	case "transaction_updated":
		m.transactionsChanged.WithLabelValues("update").Inc()
	case "transaction_deleted":
		m.transactionsChanged.WithLabelValues("delete").Inc()
	case "category_created":
		m.categoriesCreated.Inc()
	case "category_membership":
		if operation := tags["operation"]; operation != "" {
			m.membershipChanges.WithLabelValues(operation).Inc()
		}
	case "user_registered":
		m.usersRegistered.Inc()
	case "limit_exceeded":
		if scope := tags["scope"]; scope != "" {
			m.limitsExceeded.WithLabelValues(scope).Inc()
		}
	case "request_completed":
		if status := tags["status"]; status != "" {
			m.requestsTotal.WithLabelValues(status).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "request":
		m.requestDuration.Observe(float64(duration.Milliseconds()))
	case "period_statistics":
		m.reportDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	if name != "transaction_amount" {
		return
	}
	if transactionType := tags["type"]; transactionType != "" {
		m.transactionAmount.WithLabelValues(transactionType).Observe(value)
	}
}
