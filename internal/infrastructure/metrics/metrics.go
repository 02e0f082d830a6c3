package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type SettlementMetrics struct {
	PassesTotal  prometheus.Counter
	PassDuration prometheus.Histogram

	VendorOrdersSettledTotal prometheus.CounterVec
	VendorOrdersFailedTotal  prometheus.CounterVec
	SettledAmountTotal       prometheus.CounterVec
	CommissionAmountTotal    prometheus.CounterVec
	BelowMinimumSkippedTotal prometheus.Counter

	TransferDuration prometheus.HistogramVec
}

func NewSettlementMetrics() *SettlementMetrics {
	return &SettlementMetrics{
		PassesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "settlement_passes_total",
				Help: "Number of settlement passes executed",
			},
		),

		PassDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "settlement_pass_duration_seconds",
				Help:    "Duration of a full settlement pass",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
			},
		),

		VendorOrdersSettledTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_vendor_orders_settled_total",
				Help: "Vendor orders marked paid, by store",
			},
			[]string{"store_id"},
		),

		VendorOrdersFailedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_vendor_orders_failed_total",
				Help: "Vendor orders marked failed, by store and failure kind",
			},
			[]string{"store_id", "reason"},
		),

		SettledAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_vendor_amount_total",
				Help: "Total vendor payout amount settled, by store and currency",
			},
			[]string{"store_id", "currency"},
		),

		CommissionAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_commission_amount_total",
				Help: "Total platform commission locked in, by store and currency",
			},
			[]string{"store_id", "currency"},
		),

		BelowMinimumSkippedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "settlement_below_minimum_skipped_total",
				Help: "Vendor orders marked paid without a transfer because the amount was below the processor minimum",
			},
		),

		TransferDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "settlement_transfer_duration_seconds",
				Help:    "Duration of external transfer calls",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
			},
			[]string{"outcome"},
		),
	}
}

func (m *SettlementMetrics) RecordSettled(storeID, currency string, vendorAmount, commissionAmount float64) {
	m.VendorOrdersSettledTotal.WithLabelValues(storeID).Inc()
	m.SettledAmountTotal.WithLabelValues(storeID, currency).Add(vendorAmount)
	m.CommissionAmountTotal.WithLabelValues(storeID, currency).Add(commissionAmount)
}

func (m *SettlementMetrics) RecordFailed(storeID, reason string) {
	m.VendorOrdersFailedTotal.WithLabelValues(storeID, reason).Inc()
}

func (m *SettlementMetrics) RecordTransferDuration(outcome string, seconds float64) {
	m.TransferDuration.WithLabelValues(outcome).Observe(seconds)
}

func (m *SettlementMetrics) RecordPass(durationSeconds float64) {
	m.PassesTotal.Inc()
	m.PassDuration.Observe(durationSeconds)
}
