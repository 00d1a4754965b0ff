package scan

import (
	"fmt"
	"math"

	"github.com/quantforge/taseries/internal/types"
	"github.com/quantforge/taseries/pkg/ta"
)

// MACDRule fires when the MACD line crosses its signal line.
type MACDRule struct {
	fast, slow, signal int
}

// NewMACDRule creates a MACD crossover rule.
func NewMACDRule(fast, slow, signal int) *MACDRule {
	return &MACDRule{fast: fast, slow: slow, signal: signal}
}

// Name returns the rule identifier.
func (r *MACDRule) Name() string {
	return "macd"
}

// Evaluate scans for line/signal crossovers. A cross above reads
// bullish, a cross below bearish.
func (r *MACDRule) Evaluate(symbol string, f types.Frame) ([]types.Signal, error) {
	macd, err := ta.MACD(f.Close, r.fast, r.slow, r.signal)
	if err != nil {
		return nil, fmt.Errorf("macd: %w", err)
	}

	var signals []types.Signal
	for i := 1; i < len(macd.Line); i++ {
		if math.IsNaN(macd.Line[i]) || math.IsNaN(macd.Signal[i]) ||
			math.IsNaN(macd.Line[i-1]) || math.IsNaN(macd.Signal[i-1]) {
			continue
		}
		if crossedAbove(macd.Line, macd.Signal, i) {
			signals = append(signals, newSignal(r.Name(), symbol, f, i,
				types.DirectionBullish, macd.Line[i],
				"macd line crossed above signal"))
		}
		if crossedBelow(macd.Line, macd.Signal, i) {
			signals = append(signals, newSignal(r.Name(), symbol, f, i,
				types.DirectionBearish, macd.Line[i],
				"macd line crossed below signal"))
		}
	}

	return signals, nil
}
