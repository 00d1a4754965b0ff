package ta

import "math"

// CCI returns the commodity channel index over the given window:
// (tp - sma(tp)) / (0.015 * meanAbsDev(tp)), where tp is the typical
// price (high+low+close)/3. The deviation at index 0 is overridden to
// +Inf so the first output reads 0 instead of 0/0; later flat windows
// are not special-cased and their NaN propagates.
func CCI(high, low, close []float64, w int) ([]float64, error) {
	if w < 1 {
		return nil, ErrInvalidPeriod
	}
	tp, err := Apply3(func(h, l, c float64) float64 { return (h + l + c) / 3 }, high, low, close)
	if err != nil {
		return nil, err
	}
	if len(tp) == 0 {
		return nil, ErrEmptySeries
	}

	tpsma, err := RollingMean(tp, w)
	if err != nil {
		return nil, err
	}
	tpmad, err := RollingMeanAbsDev(tp, w)
	if err != nil {
		return nil, err
	}
	tpmad[0] = math.Inf(1)

	out := make([]float64, len(tp))
	for i := range tp {
		out[i] = (tp[i] - tpsma[i]) / (0.015 * tpmad[i])
	}
	return out, nil
}
