package scan

import (
	"fmt"

	"github.com/quantforge/taseries/internal/types"
	"github.com/quantforge/taseries/pkg/ta"
)

// PSARRule fires when the parabolic SAR flips from one side of price
// to the other.
type PSARRule struct {
	step, max float64
}

// NewPSARRule creates a SAR flip rule.
func NewPSARRule(step, max float64) *PSARRule {
	return &PSARRule{step: step, max: max}
}

// Name returns the rule identifier.
func (r *PSARRule) Name() string {
	return "psar"
}

// Evaluate scans for SAR flips. SAR moving below price reads bullish,
// above price bearish.
func (r *PSARRule) Evaluate(symbol string, f types.Frame) ([]types.Signal, error) {
	sar, err := ta.PSAR(f.High, f.Low, r.step, r.max)
	if err != nil {
		return nil, fmt.Errorf("psar: %w", err)
	}

	var signals []types.Signal
	for i := 1; i < f.Len(); i++ {
		below := sar[i] < f.Close[i]
		wasBelow := sar[i-1] < f.Close[i-1]
		if below == wasBelow {
			continue
		}
		if below {
			signals = append(signals, newSignal(r.Name(), symbol, f, i,
				types.DirectionBullish, sar[i],
				"sar flipped below price"))
		} else {
			signals = append(signals, newSignal(r.Name(), symbol, f, i,
				types.DirectionBearish, sar[i],
				"sar flipped above price"))
		}
	}

	return signals, nil
}
