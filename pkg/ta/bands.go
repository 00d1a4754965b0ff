package ta

// BandsResult holds a volatility channel: upper, middle and lower lines.
type BandsResult struct {
	Upper  []float64
	Middle []float64
	Lower  []float64
}

// BollingerBands places bands mult standard deviations above and below a
// simple moving average. The middle line inherits SMA's strict boundary,
// so the first w-1 indices of every line are NaN.
func BollingerBands(close []float64, w int, mult float64) (BandsResult, error) {
	middle, err := SMA(close, w)
	if err != nil {
		return BandsResult{}, err
	}
	dev, err := RollingStd(close, w)
	if err != nil {
		return BandsResult{}, err
	}
	upper, err := Apply2(func(m, d float64) float64 { return m + mult*d }, middle, dev)
	if err != nil {
		return BandsResult{}, err
	}
	lower, err := Apply2(func(m, d float64) float64 { return m - mult*d }, middle, dev)
	if err != nil {
		return BandsResult{}, err
	}
	return BandsResult{Upper: upper, Middle: middle, Lower: lower}, nil
}

// ExponentialBollingerBands is the Bollinger variant with an exponential
// middle line. The rolling deviation uses truncated windows, so all three
// lines are defined at every index.
func ExponentialBollingerBands(close []float64, w int, mult float64) (BandsResult, error) {
	middle, err := EMA(close, w)
	if err != nil {
		return BandsResult{}, err
	}
	dev, err := RollingStd(close, w)
	if err != nil {
		return BandsResult{}, err
	}
	upper, err := Apply2(func(m, d float64) float64 { return m + mult*d }, middle, dev)
	if err != nil {
		return BandsResult{}, err
	}
	lower, err := Apply2(func(m, d float64) float64 { return m - mult*d }, middle, dev)
	if err != nil {
		return BandsResult{}, err
	}
	return BandsResult{Upper: upper, Middle: middle, Lower: lower}, nil
}

// KeltnerChannel places bands mult average-true-ranges around an
// exponential moving average of the close.
func KeltnerChannel(high, low, close []float64, w int, mult float64) (BandsResult, error) {
	middle, err := EMA(close, w)
	if err != nil {
		return BandsResult{}, err
	}
	atr, err := ATR(high, low, close, w)
	if err != nil {
		return BandsResult{}, err
	}
	upper, err := Apply2(func(m, a float64) float64 { return m + mult*a }, middle, atr)
	if err != nil {
		return BandsResult{}, err
	}
	lower, err := Apply2(func(m, a float64) float64 { return m - mult*a }, middle, atr)
	if err != nil {
		return BandsResult{}, err
	}
	return BandsResult{Upper: upper, Middle: middle, Lower: lower}, nil
}
