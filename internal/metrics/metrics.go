// Package metrics provides Prometheus metrics for the scanner.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BarsProcessed counts candles consumed from the feed.
	BarsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "taseries",
		Name:      "bars_processed_total",
		Help:      "Number of candles processed, by symbol and feed.",
	}, []string{"symbol", "feed"})

	// SignalsGenerated counts signals emitted by scan rules.
	SignalsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "taseries",
		Name:      "signals_generated_total",
		Help:      "Number of signals generated, by rule and direction.",
	}, []string{"rule", "direction"})

	// RuleErrors counts rule evaluation failures.
	RuleErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "taseries",
		Name:      "rule_errors_total",
		Help:      "Number of rule evaluation errors, by rule.",
	}, []string{"rule"})

	// ScanDuration observes how long a full scan takes.
	ScanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "taseries",
		Name:      "scan_duration_seconds",
		Help:      "Duration of a full rule scan over a candle history.",
		Buckets:   prometheus.DefBuckets,
	})

	// LastBarTimestamp tracks the newest bar seen per symbol.
	LastBarTimestamp = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "taseries",
		Name:      "last_bar_timestamp_seconds",
		Help:      "Unix timestamp of the most recent candle, by symbol.",
	}, []string{"symbol"})

	// FeedActive tracks whether a feed subscription is live.
	FeedActive = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "taseries",
		Name:      "feed_active",
		Help:      "Whether a feed subscription is active (1) or not (0).",
	}, []string{"feed"})

	// ErrorsTotal counts errors by component.
	ErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "taseries",
		Name:      "errors_total",
		Help:      "Number of errors, by component.",
	}, []string{"component"})
)
