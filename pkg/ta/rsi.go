package ta

// RSI returns the relative strength index of close with the given window.
// Gains and losses are smoothed with the exponential engine, so the
// output is defined at every index and stays within [0, 100]; a series
// with no losses in the smoothing horizon reads exactly 100.
func RSI(close []float64, w int) ([]float64, error) {
	if w < 1 {
		return nil, ErrInvalidPeriod
	}
	if len(close) == 0 {
		return nil, ErrEmptySeries
	}
	if w > len(close) {
		return nil, ErrInsufficientData
	}

	gains := make([]float64, len(close))
	losses := make([]float64, len(close))
	for i := 1; i < len(close); i++ {
		diff := close[i] - close[i-1]
		if diff > 0 {
			gains[i] = diff
		} else {
			losses[i] = -diff
		}
	}

	avgGain, err := EMA(gains, w)
	if err != nil {
		return nil, err
	}
	avgLoss, err := EMA(losses, w)
	if err != nil {
		return nil, err
	}

	return Apply2(func(g, l float64) float64 {
		// l == 0 drives rs to +Inf and the quotient below to 0,
		// so the all-gain reading is 100 without a special case.
		rs := g / l
		return 100 - 100/(1+rs)
	}, avgGain, avgLoss)
}

// StochRSIResult holds the stochastic RSI lines.
type StochRSIResult struct {
	K []float64
	D []float64
}

// StochRSI normalizes the RSI against its own rolling range:
//
//	K[i] = (rsi[i] - min(window)) / (max(window) - min(window))
//
// K[0] is overridden to 0: the first window has size one, so its range is
// zero and the quotient would be 0/0. A flat RSI window at any later index
// is NOT special-cased; the resulting NaN or Inf propagates. K is smoothed
// with a trailing moving average of smoothW and D is the signal moving
// average of K over signalW.
func StochRSI(close []float64, rsiW, stochW, smoothW, signalW int) (StochRSIResult, error) {
	if stochW < 1 || smoothW < 1 || signalW < 1 {
		return StochRSIResult{}, ErrInvalidPeriod
	}
	rsi, err := RSI(close, rsiW)
	if err != nil {
		return StochRSIResult{}, err
	}

	lo, err := RollingMin(rsi, stochW)
	if err != nil {
		return StochRSIResult{}, err
	}
	hi, err := RollingMax(rsi, stochW)
	if err != nil {
		return StochRSIResult{}, err
	}

	k := make([]float64, len(rsi))
	k[0] = 0
	for i := 1; i < len(rsi); i++ {
		k[i] = (rsi[i] - lo[i]) / (hi[i] - lo[i])
	}

	k, err = RollingMean(k, smoothW)
	if err != nil {
		return StochRSIResult{}, err
	}
	d, err := RollingMean(k, signalW)
	if err != nil {
		return StochRSIResult{}, err
	}
	return StochRSIResult{K: k, D: d}, nil
}
