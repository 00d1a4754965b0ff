package alerting

import (
	"time"

	"github.com/quantforge/taseries/internal/types"
)

// ScanSummary aggregates the outcome of a scan for the summary report.
type ScanSummary struct {
	Symbol      string
	From        time.Time
	To          time.Time
	BarsScanned int
	Total       int
	Bullish     int
	Bearish     int
	ByRule      map[string]int
}

// NewScanSummary builds a summary from the scanned range and signals.
func NewScanSummary(symbol string, from, to time.Time, bars int, signals []types.Signal) ScanSummary {
	s := ScanSummary{
		Symbol:      symbol,
		From:        from,
		To:          to,
		BarsScanned: bars,
		Total:       len(signals),
		ByRule:      make(map[string]int),
	}

	for _, sig := range signals {
		s.ByRule[sig.Rule]++
		switch sig.Direction {
		case types.DirectionBullish:
			s.Bullish++
		case types.DirectionBearish:
			s.Bearish++
		}
	}

	return s
}
