package scan

import (
	"fmt"
	"math"

	"github.com/quantforge/taseries/internal/types"
	"github.com/quantforge/taseries/pkg/ta"
)

// BollingerRule fires when the close breaks out of the bands.
type BollingerRule struct {
	period int
	width  float64
}

// NewBollingerRule creates a band breakout rule.
func NewBollingerRule(period int, width float64) *BollingerRule {
	return &BollingerRule{period: period, width: width}
}

// Name returns the rule identifier.
func (r *BollingerRule) Name() string {
	return "bollinger"
}

// Evaluate scans for closes breaking the bands. Breaking above the
// upper band reads bullish, breaking below the lower band bearish.
func (r *BollingerRule) Evaluate(symbol string, f types.Frame) ([]types.Signal, error) {
	bands, err := ta.BollingerBands(f.Close, r.period, r.width)
	if err != nil {
		return nil, fmt.Errorf("bollinger: %w", err)
	}

	var signals []types.Signal
	for i := 1; i < f.Len(); i++ {
		if math.IsNaN(bands.Upper[i]) || math.IsNaN(bands.Upper[i-1]) {
			continue
		}
		if crossedAbove(f.Close, bands.Upper, i) {
			signals = append(signals, newSignal(r.Name(), symbol, f, i,
				types.DirectionBullish, f.Close[i],
				"close broke above upper band"))
		}
		if crossedBelow(f.Close, bands.Lower, i) {
			signals = append(signals, newSignal(r.Name(), symbol, f, i,
				types.DirectionBearish, f.Close[i],
				"close broke below lower band"))
		}
	}

	return signals, nil
}
