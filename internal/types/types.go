// Package types defines shared types used across the scanner.
package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Candle is one OHLCV bar. Prices stay exact in the data layer and are
// converted to float64 only at the indicator boundary.
type Candle struct {
	Symbol    string
	Timestamp time.Time
	Open      decimal.Decimal
	High      decimal.Decimal
	Low       decimal.Decimal
	Close     decimal.Decimal
	Volume    int64
}

// Frame holds the parallel float64 series extracted from a candle
// history, in the shape the indicator layer consumes.
type Frame struct {
	Times  []int64
	Open   []float64
	High   []float64
	Low    []float64
	Close  []float64
	Volume []float64
}

// NewFrame converts a candle history into parallel series. Index i of
// every slice refers to the same bar.
func NewFrame(candles []Candle) Frame {
	f := Frame{
		Times:  make([]int64, len(candles)),
		Open:   make([]float64, len(candles)),
		High:   make([]float64, len(candles)),
		Low:    make([]float64, len(candles)),
		Close:  make([]float64, len(candles)),
		Volume: make([]float64, len(candles)),
	}
	for i, c := range candles {
		f.Times[i] = c.Timestamp.Unix()
		f.Open[i] = c.Open.InexactFloat64()
		f.High[i] = c.High.InexactFloat64()
		f.Low[i] = c.Low.InexactFloat64()
		f.Close[i] = c.Close.InexactFloat64()
		f.Volume[i] = float64(c.Volume)
	}
	return f
}

// Len returns the number of bars in the frame.
func (f Frame) Len() int {
	return len(f.Close)
}

// Direction classifies what a signal says about the market.
type Direction int

const (
	DirectionNeutral Direction = iota
	DirectionBullish
	DirectionBearish
)

func (d Direction) String() string {
	switch d {
	case DirectionBullish:
		return "BULLISH"
	case DirectionBearish:
		return "BEARISH"
	default:
		return "NEUTRAL"
	}
}

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionBullish:
		return DirectionBearish
	case DirectionBearish:
		return DirectionBullish
	default:
		return DirectionNeutral
	}
}

// Signal represents one scan rule firing on one bar.
type Signal struct {
	ID        string
	Timestamp time.Time
	Symbol    string
	Rule      string
	Direction Direction
	Value     float64 // the indicator reading that triggered the rule
	Reason    string
}
