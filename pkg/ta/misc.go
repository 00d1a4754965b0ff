package ta

// WilliamsR returns Williams %R over the given window:
// (highestHigh - close) / (highestHigh - lowestLow) * -100, using
// truncated windows near the start. A flat window divides by zero and the
// NaN propagates.
func WilliamsR(high, low, close []float64, w int) ([]float64, error) {
	if len(high) != len(low) || len(high) != len(close) {
		return nil, ErrLengthMismatch
	}
	hh, err := RollingMax(high, w)
	if err != nil {
		return nil, err
	}
	ll, err := RollingMin(low, w)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(close))
	for i := range close {
		out[i] = (hh[i] - close[i]) / (hh[i] - ll[i]) * -100
	}
	return out, nil
}

// ROC returns the rate of change: the percent change of s against its
// value n steps back. The first n indices are NaN.
func ROC(s []float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, ErrInvalidPeriod
	}
	if len(s) == 0 {
		return nil, ErrEmptySeries
	}
	out := make([]float64, len(s))
	for i := range s {
		if i < n {
			out[i] = nan
			continue
		}
		out[i] = (s[i] - s[i-n]) / s[i-n] * 100
	}
	return out, nil
}

// KSTResult holds the know-sure-thing line and its signal average.
type KSTResult struct {
	Line   []float64
	Signal []float64
}

// KST sums four smoothed rate-of-change series weighted 1 through 4.
// Each ROC is smoothed with a trailing moving average of smoothW, as is
// the signal line. The NaN prefix of the longest ROC poisons the early
// indices of both lines.
func KST(close []float64, r1, r2, r3, r4, smoothW, signalW int) (KSTResult, error) {
	rocs := [4]int{r1, r2, r3, r4}
	var smoothed [4][]float64
	for i, r := range rocs {
		roc, err := ROC(close, r)
		if err != nil {
			return KSTResult{}, err
		}
		sm, err := RollingMean(roc, smoothW)
		if err != nil {
			return KSTResult{}, err
		}
		smoothed[i] = sm
	}

	line := make([]float64, len(close))
	for i := range line {
		line[i] = smoothed[0][i] + 2*smoothed[1][i] + 3*smoothed[2][i] + 4*smoothed[3][i]
	}
	signal, err := RollingMean(line, signalW)
	if err != nil {
		return KSTResult{}, err
	}
	return KSTResult{Line: line, Signal: signal}, nil
}

// FibLevels holds the standard Fibonacci retracement prices between a
// swing low and a swing high, from 0% (the high) to 100% (the low).
type FibLevels struct {
	Levels []float64 // retracement prices at 0, 23.6, 38.2, 50, 61.8, 78.6, 100 percent
}

var fibRatios = []float64{0, 0.236, 0.382, 0.5, 0.618, 0.786, 1}

// FibonacciRetracement returns the retracement price levels for the move
// from low to high.
func FibonacciRetracement(low, high float64) FibLevels {
	span := high - low
	levels := make([]float64, len(fibRatios))
	for i, r := range fibRatios {
		levels[i] = high - span*r
	}
	return FibLevels{Levels: levels}
}

// Line is a two-point linear regression result in slope/intercept form.
type Line struct {
	Slope     float64
	Intercept float64
}

// LinearRegression fits the line through (x1,y1) and (x2,y2). Equal x
// coordinates produce an Inf or NaN slope, which is propagated.
func LinearRegression(x1, y1, x2, y2 float64) Line {
	slope := (y2 - y1) / (x2 - x1)
	return Line{Slope: slope, Intercept: y1 - slope*x1}
}
