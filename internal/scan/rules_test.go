package scan

import (
	"testing"
	"time"

	"github.com/quantforge/taseries/internal/types"
	"github.com/shopspring/decimal"
)

// candlesOHLC builds a minute-bar history from parallel price slices.
func candlesOHLC(symbol string, highs, lows, closes []float64) []types.Candle {
	start := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	candles := make([]types.Candle, len(closes))
	for i := range candles {
		candles[i] = types.Candle{
			Symbol:    symbol,
			Timestamp: start.Add(time.Duration(i) * time.Minute),
			Open:      decimal.NewFromFloat(closes[i]),
			High:      decimal.NewFromFloat(highs[i]),
			Low:       decimal.NewFromFloat(lows[i]),
			Close:     decimal.NewFromFloat(closes[i]),
			Volume:    1000,
		}
	}
	return candles
}

// candlesFromCloses builds a history where high and low hug the close.
func candlesFromCloses(symbol string, closes []float64) []types.Candle {
	highs := make([]float64, len(closes))
	lows := make([]float64, len(closes))
	for i, c := range closes {
		highs[i] = c + 0.5
		lows[i] = c - 0.5
	}
	return candlesOHLC(symbol, highs, lows, closes)
}

func TestRSIRule_FiresOnOverboughtEntry(t *testing.T) {
	// Ten falling bars pin RSI at the floor, then a strong rally
	// pushes it up through the overbought threshold exactly once.
	closes := make([]float64, 0, 20)
	p := 100.0
	for i := 0; i < 10; i++ {
		closes = append(closes, p)
		p -= 1
	}
	for i := 0; i < 10; i++ {
		p += 2
		closes = append(closes, p)
	}

	rule := NewRSIRule(3, 70, 30)
	frame := types.NewFrame(candlesFromCloses("SPY", closes))

	signals, err := rule.Evaluate("SPY", frame)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	if len(signals) != 1 {
		t.Fatalf("signals = %d, want 1", len(signals))
	}
	if signals[0].Direction != types.DirectionBearish {
		t.Errorf("direction = %v, want BEARISH on overbought entry", signals[0].Direction)
	}
	if signals[0].Rule != "rsi" {
		t.Errorf("rule = %s, want rsi", signals[0].Rule)
	}
	if signals[0].Value < 70 {
		t.Errorf("value = %v, want >= 70", signals[0].Value)
	}
}

func TestRSIRule_QuietMarketStaysSilent(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		// Small alternation keeps RSI near 50.
		closes[i] = 100 + float64(i%2)*0.1
	}

	rule := NewRSIRule(14, 70, 30)
	frame := types.NewFrame(candlesFromCloses("SPY", closes))

	signals, err := rule.Evaluate("SPY", frame)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(signals) != 0 {
		t.Errorf("signals = %d, want 0 in a quiet market", len(signals))
	}
}

func TestMACDRule_FiresOnCrossover(t *testing.T) {
	// Flat prices hold both EMAs together, then a steady ramp pulls
	// the fast EMA ahead. The line crosses its signal once.
	closes := make([]float64, 0, 20)
	for i := 0; i < 10; i++ {
		closes = append(closes, 100)
	}
	p := 100.0
	for i := 0; i < 10; i++ {
		p += 5
		closes = append(closes, p)
	}

	rule := NewMACDRule(3, 6, 3)
	frame := types.NewFrame(candlesFromCloses("SPY", closes))

	signals, err := rule.Evaluate("SPY", frame)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	if len(signals) != 1 {
		t.Fatalf("signals = %d, want 1", len(signals))
	}
	if signals[0].Direction != types.DirectionBullish {
		t.Errorf("direction = %v, want BULLISH on cross above", signals[0].Direction)
	}
}

func TestBollingerRule_FiresOnBreakout(t *testing.T) {
	// Flat bars collapse the bands onto price, then a spike closes
	// above the upper band.
	closes := []float64{100, 100, 100, 100, 100, 100, 100, 100, 100, 110}

	rule := NewBollingerRule(3, 1)
	frame := types.NewFrame(candlesFromCloses("SPY", closes))

	signals, err := rule.Evaluate("SPY", frame)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	if len(signals) != 1 {
		t.Fatalf("signals = %d, want 1", len(signals))
	}
	if signals[0].Direction != types.DirectionBullish {
		t.Errorf("direction = %v, want BULLISH on upper band break", signals[0].Direction)
	}
	if signals[0].Value != 110 {
		t.Errorf("value = %v, want the breakout close 110", signals[0].Value)
	}
}

func TestPSARRule_FiresOnReversal(t *testing.T) {
	highs := []float64{10, 11, 12, 13, 14, 15, 12, 11}
	lows := []float64{9, 10, 11, 12, 13, 14, 9, 8}
	closes := []float64{9.5, 10.5, 11.5, 12.5, 13.5, 14.5, 10, 9}

	rule := NewPSARRule(0.02, 0.2)
	frame := types.NewFrame(candlesOHLC("SPY", highs, lows, closes))

	signals, err := rule.Evaluate("SPY", frame)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	if len(signals) == 0 {
		t.Fatal("expected a signal on the crash bar")
	}
	last := signals[len(signals)-1]
	if last.Direction != types.DirectionBearish {
		t.Errorf("direction = %v, want BEARISH after the reversal", last.Direction)
	}
}
