package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsTotal   *prometheus.CounterVec
	transactionDuration prometheus.Histogram
	accountsCreated     prometheus.Counter
	accountsDeleted     prometheus.Counter
	expensesRecorded    *prometheus.CounterVec
	progressComputed    prometheus.Counter
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transactionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_transactions_total",
				Help: "Total number of ledger transactions by type and status",
			},
			[]string{"type", "status"},
		),
		transactionDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_transaction_duration_milliseconds",
				Help:    "Transaction application duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		accountsCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_accounts_created_total",
				Help: "Total number of accounts created",
			},
		),
		accountsDeleted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_accounts_deleted_total",
				Help: "Total number of accounts deleted",
			},
		),
		expensesRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_expenses_recorded_total",
				Help: "Total number of expense entries recorded by category",
			},
			[]string{"category"},
		),
		progressComputed: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_goal_progress_computed_total",
				Help: "Total number of goal progress reports computed",
			},
		),
	}
}

func (m *PrometheusMetrics) RecordTransaction(transactionType, status string) {
	m.transactionsTotal.WithLabelValues(transactionType, status).Inc()
}

func (m *PrometheusMetrics) RecordTransactionDuration(duration time.Duration) {
	m.transactionDuration.Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordAccountCreated() {
	m.accountsCreated.Inc()
}

func (m *PrometheusMetrics) RecordAccountDeleted() {
	m.accountsDeleted.Inc()
}

func (m *PrometheusMetrics) RecordExpenseRecorded(category string) {
	m.expensesRecorded.WithLabelValues(category).Inc()
}

func (m *PrometheusMetrics) RecordProgressComputed() {
	m.progressComputed.Inc()
}

// NoopMetrics is a MetricsRecorderInterface that records nothing. Used in
// tests and wherever metrics are not wired up.
type NoopMetrics struct{}

func (NoopMetrics) RecordTransaction(transactionType, status string)   {}
func (NoopMetrics) RecordTransactionDuration(duration time.Duration)   {}
func (NoopMetrics) RecordAccountCreated()                              {}
func (NoopMetrics) RecordAccountDeleted()                              {}
func (NoopMetrics) RecordExpenseRecorded(category string)              {}
func (NoopMetrics) RecordProgressComputed()                            {}
