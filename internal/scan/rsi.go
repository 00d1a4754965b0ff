package scan

import (
	"fmt"
	"math"

	"github.com/quantforge/taseries/internal/types"
	"github.com/quantforge/taseries/pkg/ta"
)

// RSIRule fires when RSI crosses into overbought or oversold territory.
type RSIRule struct {
	period     int
	overbought float64
	oversold   float64
}

// NewRSIRule creates an RSI threshold rule.
func NewRSIRule(period int, overbought, oversold float64) *RSIRule {
	return &RSIRule{
		period:     period,
		overbought: overbought,
		oversold:   oversold,
	}
}

// Name returns the rule identifier.
func (r *RSIRule) Name() string {
	return "rsi"
}

// Evaluate scans for threshold crossings. Entering overbought reads
// bearish, entering oversold reads bullish.
func (r *RSIRule) Evaluate(symbol string, f types.Frame) ([]types.Signal, error) {
	rsi, err := ta.RSI(f.Close, r.period)
	if err != nil {
		return nil, fmt.Errorf("rsi: %w", err)
	}

	var signals []types.Signal
	for i := 1; i < len(rsi); i++ {
		if math.IsNaN(rsi[i]) || math.IsNaN(rsi[i-1]) {
			continue
		}
		if rsi[i] >= r.overbought && rsi[i-1] < r.overbought {
			signals = append(signals, newSignal(r.Name(), symbol, f, i,
				types.DirectionBearish, rsi[i],
				fmt.Sprintf("rsi %.1f crossed above %.1f", rsi[i], r.overbought)))
		}
		if rsi[i] <= r.oversold && rsi[i-1] > r.oversold {
			signals = append(signals, newSignal(r.Name(), symbol, f, i,
				types.DirectionBullish, rsi[i],
				fmt.Sprintf("rsi %.1f crossed below %.1f", rsi[i], r.oversold)))
		}
	}

	return signals, nil
}
