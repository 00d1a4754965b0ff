package ta

import "math"

var nan = math.NaN()

// SMA returns the simple moving average of s with window w. Indices with
// fewer than w samples of history are NaN; this is a strict boundary,
// deliberately tighter than the rolling engine's truncation policy.
func SMA(s []float64, w int) ([]float64, error) {
	out, err := RollingMean(s, w)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(out) && i < w-1; i++ {
		out[i] = nan
	}
	return out, nil
}

// WMA returns the linearly weighted moving average of s with window w.
// The most recent sample carries weight w, the oldest weight 1. Indices
// with fewer than w samples of history are NaN.
func WMA(s []float64, w int) ([]float64, error) {
	if w < 1 {
		return nil, ErrInvalidPeriod
	}
	if len(s) == 0 {
		return nil, ErrEmptySeries
	}
	denom := float64(w*(w+1)) / 2
	out := make([]float64, len(s))
	for i := range s {
		if i < w-1 {
			out[i] = nan
			continue
		}
		var sum float64
		for j := 0; j < w; j++ {
			sum += s[i-w+1+j] * float64(j+1)
		}
		out[i] = sum / denom
	}
	return out, nil
}
