package ta

// MFI returns the money flow index over the given window. Raw money flow
// is typical price times volume, split into positive and negative flow by
// the direction of the typical price change; the index is
// 100 - 100/(1 + positive/negative) over trailing sums. A window with no
// negative flow reads 100 through Inf propagation.
func MFI(high, low, close, volume []float64, w int) ([]float64, error) {
	if w < 1 {
		return nil, ErrInvalidPeriod
	}
	if len(high) != len(low) || len(high) != len(close) || len(high) != len(volume) {
		return nil, ErrLengthMismatch
	}
	if len(high) == 0 {
		return nil, ErrEmptySeries
	}

	n := len(high)
	posFlow := make([]float64, n)
	negFlow := make([]float64, n)
	prevTP := (high[0] + low[0] + close[0]) / 3
	for i := 1; i < n; i++ {
		tp := (high[i] + low[i] + close[i]) / 3
		flow := tp * volume[i]
		if tp > prevTP {
			posFlow[i] = flow
		} else if tp < prevTP {
			negFlow[i] = flow
		}
		prevTP = tp
	}

	posSum, err := RollingSum(posFlow, w)
	if err != nil {
		return nil, err
	}
	negSum, err := RollingSum(negFlow, w)
	if err != nil {
		return nil, err
	}
	return Apply2(func(pos, neg float64) float64 {
		return 100 - 100/(1+pos/neg)
	}, posSum, negSum)
}
