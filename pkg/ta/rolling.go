package ta

// Rolling applies reduce to every trailing window of s, producing an
// output series of the same length: out[i] = reduce(s[max(0, i+1-w)..i]).
//
// Windows near the start of the series are passed truncated rather than
// rejected, so out[0] is always reduce of the single-element window.
// Callers that need "undefined until warm" semantics must encode that in
// the reducer or overwrite the early indices afterwards.
func Rolling(s []float64, w int, reduce func(window []float64) float64) ([]float64, error) {
	if w < 1 {
		return nil, ErrInvalidPeriod
	}
	if len(s) == 0 {
		return nil, ErrEmptySeries
	}
	out := make([]float64, len(s))
	for i := range s {
		lo := i + 1 - w
		if lo < 0 {
			lo = 0
		}
		out[i] = reduce(s[lo : i+1])
	}
	return out, nil
}

// RollingSum returns the trailing-window sum of s.
func RollingSum(s []float64, w int) ([]float64, error) {
	return Rolling(s, w, func(win []float64) float64 {
		var sum float64
		for _, v := range win {
			sum += v
		}
		return sum
	})
}

// RollingMean returns the trailing-window mean of s.
func RollingMean(s []float64, w int) ([]float64, error) {
	return Rolling(s, w, mean)
}

// RollingMin returns the trailing-window minimum of s.
func RollingMin(s []float64, w int) ([]float64, error) {
	return Rolling(s, w, func(win []float64) float64 {
		min := win[0]
		for _, v := range win[1:] {
			if v < min {
				min = v
			}
		}
		return min
	})
}

// RollingMax returns the trailing-window maximum of s.
func RollingMax(s []float64, w int) ([]float64, error) {
	return Rolling(s, w, func(win []float64) float64 {
		max := win[0]
		for _, v := range win[1:] {
			if v > max {
				max = v
			}
		}
		return max
	})
}

// RollingStd returns the trailing-window population standard deviation.
func RollingStd(s []float64, w int) ([]float64, error) {
	return Rolling(s, w, std)
}

// RollingMeanAbsDev returns the trailing-window mean absolute deviation.
func RollingMeanAbsDev(s []float64, w int) ([]float64, error) {
	return Rolling(s, w, meanAbsDev)
}
