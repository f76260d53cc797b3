package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AffiliateMetrics covers the commission engine surfaces: conversion
// flow, payout flow, ledger recomputation cost and data-integrity
// anomalies found during graph walks.
type AffiliateMetrics struct {
	ConversionsLoggedTotal   prometheus.CounterVec
	ConversionsAmountTotal   prometheus.CounterVec
	ConversionsApprovedTotal prometheus.Counter
	ConversionsRefundedTotal prometheus.Counter

	AffiliatesCreatedTotal  prometheus.CounterVec
	AffiliatesApprovedTotal prometheus.Counter
	AffiliatesRejectedTotal prometheus.Counter

	PayoutsTotal       prometheus.CounterVec
	PayoutsAmountTotal prometheus.CounterVec

	TierTableReplacedTotal prometheus.Counter

	LedgerComputeDuration prometheus.Histogram

	GraphCyclesDetectedTotal      prometheus.Counter
	DanglingConversionsTotal      prometheus.Counter
	DanglingParentsTotal          prometheus.Counter
	IntegritySweepsTotal          prometheus.Counter
	PayNowConflictsTotal          prometheus.Counter
}

func NewAffiliateMetrics() *AffiliateMetrics {
	return &AffiliateMetrics{
		ConversionsLoggedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "conversions_logged_total",
				Help: "Conversions recorded, by source",
			},
			[]string{"source"},
		),

		ConversionsAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "conversions_amount_total",
				Help: "Total sale amount recorded, by source",
			},
			[]string{"source"},
		),

		ConversionsApprovedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "conversions_approved_total",
				Help: "Conversions moved from pending to approved",
			},
		),

		ConversionsRefundedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "conversions_refunded_total",
				Help: "Conversions deleted by refund",
			},
		),

		AffiliatesCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "affiliates_created_total",
				Help: "Affiliates created, by initial status",
			},
			[]string{"status"},
		),

		AffiliatesApprovedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "affiliates_approved_total",
				Help: "Affiliate applications approved",
			},
		),

		AffiliatesRejectedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "affiliates_rejected_total",
				Help: "Affiliate applications rejected",
			},
		),

		PayoutsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payouts_total",
				Help: "Payout records created, by method",
			},
			[]string{"method"},
		),

		PayoutsAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payouts_amount_total",
				Help: "Total amount paid out, by method",
			},
			[]string{"method"},
		),

		TierTableReplacedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "tier_table_replaced_total",
				Help: "Full tier table replacements",
			},
		),

		LedgerComputeDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_compute_duration_seconds",
				Help:    "Time spent recomputing a single affiliate ledger",
				Buckets: prometheus.DefBuckets,
			},
		),

		GraphCyclesDetectedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "graph_cycles_detected_total",
				Help: "Recruiter graph cycles hit during traversal",
			},
		),

		DanglingConversionsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "dangling_conversions_total",
				Help: "Conversions whose owner is not a known affiliate",
			},
		),

		DanglingParentsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "dangling_parents_total",
				Help: "Affiliates whose parent id is not a known affiliate",
			},
		),

		IntegritySweepsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "integrity_sweeps_total",
				Help: "Background data-integrity sweeps completed",
			},
		),

		PayNowConflictsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "pay_now_conflicts_total",
				Help: "Pay-now submissions rejected because conversions were already paid",
			},
		),
	}
}
