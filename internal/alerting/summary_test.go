package alerting

import (
	"testing"
	"time"

	"github.com/quantforge/taseries/internal/types"
)

func TestNewScanSummary(t *testing.T) {
	from := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	to := from.Add(4 * time.Hour)

	signals := []types.Signal{
		{Rule: "rsi", Direction: types.DirectionBearish},
		{Rule: "rsi", Direction: types.DirectionBullish},
		{Rule: "macd", Direction: types.DirectionBullish},
		{Rule: "psar", Direction: types.DirectionBearish},
	}

	summary := NewScanSummary("SPY", from, to, 240, signals)

	if summary.Symbol != "SPY" {
		t.Errorf("Symbol = %s, want SPY", summary.Symbol)
	}
	if summary.BarsScanned != 240 {
		t.Errorf("BarsScanned = %d, want 240", summary.BarsScanned)
	}
	if summary.Total != 4 {
		t.Errorf("Total = %d, want 4", summary.Total)
	}
	if summary.Bullish != 2 {
		t.Errorf("Bullish = %d, want 2", summary.Bullish)
	}
	if summary.Bearish != 2 {
		t.Errorf("Bearish = %d, want 2", summary.Bearish)
	}
	if summary.ByRule["rsi"] != 2 {
		t.Errorf("ByRule[rsi] = %d, want 2", summary.ByRule["rsi"])
	}
	if summary.ByRule["macd"] != 1 {
		t.Errorf("ByRule[macd] = %d, want 1", summary.ByRule["macd"])
	}
}

func TestNewScanSummary_NoSignals(t *testing.T) {
	now := time.Now()
	summary := NewScanSummary("QQQ", now, now, 100, nil)

	if summary.Total != 0 {
		t.Errorf("Total = %d, want 0", summary.Total)
	}
	if summary.Bullish != 0 || summary.Bearish != 0 {
		t.Errorf("directions = %d/%d, want 0/0", summary.Bullish, summary.Bearish)
	}
	if len(summary.ByRule) != 0 {
		t.Errorf("ByRule = %v, want empty", summary.ByRule)
	}
}
