package ta

import "math"

// trueRange is the greatest of high-low, |high-prevClose| and
// |low-prevClose|.
func trueRange(high, low, prevClose float64) float64 {
	tr := high - low
	if hc := math.Abs(high - prevClose); hc > tr {
		tr = hc
	}
	if lc := math.Abs(low - prevClose); lc > tr {
		tr = lc
	}
	return tr
}

// TrueRange returns the per-bar true range series. The first bar has no
// previous close, so its true range is simply high-low.
func TrueRange(high, low, close []float64) ([]float64, error) {
	if len(high) != len(low) || len(high) != len(close) {
		return nil, ErrLengthMismatch
	}
	if len(high) == 0 {
		return nil, ErrEmptySeries
	}
	out := make([]float64, len(high))
	out[0] = high[0] - low[0]
	for i := 1; i < len(high); i++ {
		out[i] = trueRange(high[i], low[i], close[i-1])
	}
	return out, nil
}

// ATR returns the average true range: the exponential moving average of
// the true range series. Defined at every index.
func ATR(high, low, close []float64, w int) ([]float64, error) {
	tr, err := TrueRange(high, low, close)
	if err != nil {
		return nil, err
	}
	return EMA(tr, w)
}
