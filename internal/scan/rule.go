// Package scan evaluates indicator rules over candle histories.
package scan

import (
	"time"

	"github.com/google/uuid"
	"github.com/quantforge/taseries/internal/types"
)

// Rule detects signal conditions on a frame of candle data.
// Rules compute their indicator over the full history and report the
// bars where the condition fires. They do not rank or filter signals.
type Rule interface {
	// Evaluate returns the signals the rule detects on the frame.
	// Returns nil or an empty slice if nothing fires.
	Evaluate(symbol string, f types.Frame) ([]types.Signal, error)

	// Name returns the rule identifier.
	Name() string
}

// newSignal constructs a signal for bar i of a frame.
func newSignal(rule, symbol string, f types.Frame, i int, dir types.Direction, value float64, reason string) types.Signal {
	return types.Signal{
		ID:        uuid.New().String(),
		Timestamp: time.Unix(f.Times[i], 0),
		Symbol:    symbol,
		Rule:      rule,
		Direction: dir,
		Value:     value,
		Reason:    reason,
	}
}

// crossedAbove reports whether series a moved above series b at bar i.
func crossedAbove(a, b []float64, i int) bool {
	if i < 1 {
		return false
	}
	return a[i] > b[i] && a[i-1] <= b[i-1]
}

// crossedBelow reports whether series a moved below series b at bar i.
func crossedBelow(a, b []float64, i int) bool {
	if i < 1 {
		return false
	}
	return a[i] < b[i] && a[i-1] >= b[i-1]
}
