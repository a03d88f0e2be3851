package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PipelineMetrics covers the submission pipeline end to end.
type PipelineMetrics struct {
	SubmissionsTotal          prometheus.CounterVec
	ChecksSettledTotal        prometheus.CounterVec
	ChecksSettledAmountTotal  prometheus.CounterVec
	CashbackGrantedTotal      prometheus.CounterVec
	FetchDuration             prometheus.HistogramVec
	SettleDuration            prometheus.HistogramVec
	ClampedEvaluationsTotal   prometheus.Counter
	GuardRejectionsTotal      prometheus.Counter
}

func NewPipelineMetrics() *PipelineMetrics {
	return &PipelineMetrics{
		SubmissionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "submissions_total",
				Help: "Total processed submissions by outcome",
			},
			[]string{"outcome"},
		),

		ChecksSettledTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checks_settled_total",
				Help: "Total settled fiscal checks",
			},
			[]string{"currency"},
		),

		ChecksSettledAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checks_settled_amount_total",
				Help: "Total settled check amount",
			},
			[]string{"currency"},
		),

		CashbackGrantedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashback_granted_total",
				Help: "Total cashback credited to customers",
			},
			[]string{"currency"},
		),

		FetchDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fiscal_fetch_duration_seconds",
				Help:    "Time spent fetching receipt data from the fiscal authority",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
			},
			[]string{"outcome"},
		),

		SettleDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "settlement_duration_seconds",
				Help:    "Time spent inside the settlement transaction",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 10),
			},
			[]string{"outcome"},
		),

		ClampedEvaluationsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "cashback_clamped_evaluations_total",
				Help: "Rule evaluations where a negative payout was clamped to zero",
			},
		),

		GuardRejectionsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "submission_guard_rejections_total",
				Help: "Submissions rejected because one was already in flight for the customer",
			},
		),
	}
}

func (m *PipelineMetrics) RecordSettled(currency string, amount, cashback float64) {
	m.SubmissionsTotal.WithLabelValues("settled").Inc()
	m.ChecksSettledTotal.WithLabelValues(currency).Inc()
	m.ChecksSettledAmountTotal.WithLabelValues(currency).Add(amount)
	m.CashbackGrantedTotal.WithLabelValues(currency).Add(cashback)
}

func (m *PipelineMetrics) RecordFailed(reason string) {
	m.SubmissionsTotal.WithLabelValues(reason).Inc()
}

func (m *PipelineMetrics) RecordFetch(outcome string, seconds float64) {
	m.FetchDuration.WithLabelValues(outcome).Observe(seconds)
}

func (m *PipelineMetrics) RecordSettle(outcome string, seconds float64) {
	m.SettleDuration.WithLabelValues(outcome).Observe(seconds)
}
