package ta

// EMA returns the exponential moving average of s with the given period.
// The smoothing weight is 2/(w+1) and the first output is seeded with the
// arithmetic mean of s[0..w), so the result is defined at every index.
// Requires w <= len(s) for the seed window; use EMAFrom to supply an
// explicit seed instead.
func EMA(s []float64, w int) ([]float64, error) {
	if w < 1 {
		return nil, ErrInvalidPeriod
	}
	if len(s) == 0 {
		return nil, ErrEmptySeries
	}
	if w > len(s) {
		return nil, ErrInsufficientData
	}
	return emaFrom(s, w, mean(s[:w])), nil
}

// EMAFrom is EMA seeded with an explicit starting value instead of the
// mean of the first w samples.
func EMAFrom(s []float64, w int, seed float64) ([]float64, error) {
	if w < 1 {
		return nil, ErrInvalidPeriod
	}
	if len(s) == 0 {
		return nil, ErrEmptySeries
	}
	return emaFrom(s, w, seed), nil
}

func emaFrom(s []float64, w int, seed float64) []float64 {
	weight := 2 / (float64(w) + 1)
	out := make([]float64, len(s))
	out[0] = seed
	for i := 1; i < len(s); i++ {
		out[i] = s[i]*weight + (1-weight)*out[i-1]
	}
	return out
}

// WilderSmooth applies Wilder's smoothing to s. The output is NaN for
// indices [0, w); index w carries the plain sum of s[1..w] (s[0] is
// deliberately skipped, matching Wilder's original definition); subsequent
// indices recurse as out[i] = out[i-1]*(1 - 1/w) + s[i].
//
// Note the seed is a sum, not a mean: the output runs at w times the
// average scale, and callers must divide accordingly.
func WilderSmooth(s []float64, w int) ([]float64, error) {
	if w < 1 {
		return nil, ErrInvalidPeriod
	}
	if len(s) == 0 {
		return nil, ErrEmptySeries
	}
	out := make([]float64, len(s))
	for i := 0; i < len(s) && i < w; i++ {
		out[i] = nan
	}
	if len(s) <= w {
		return out, nil
	}
	var sum float64
	for i := 1; i <= w; i++ {
		sum += s[i]
	}
	out[w] = sum
	decay := 1 - 1/float64(w)
	for i := w + 1; i < len(s); i++ {
		out[i] = out[i-1]*decay + s[i]
	}
	return out, nil
}

// DEMA returns the double exponential moving average: 2*EMA - EMA(EMA).
func DEMA(s []float64, w int) ([]float64, error) {
	e1, err := EMA(s, w)
	if err != nil {
		return nil, err
	}
	e2, err := EMA(e1, w)
	if err != nil {
		return nil, err
	}
	return Apply2(func(a, b float64) float64 { return 2*a - b }, e1, e2)
}

// TEMA returns the triple exponential moving average:
// 3*EMA - 3*EMA(EMA) + EMA(EMA(EMA)).
func TEMA(s []float64, w int) ([]float64, error) {
	e1, err := EMA(s, w)
	if err != nil {
		return nil, err
	}
	e2, err := EMA(e1, w)
	if err != nil {
		return nil, err
	}
	e3, err := EMA(e2, w)
	if err != nil {
		return nil, err
	}
	return Apply3(func(a, b, c float64) float64 { return 3*a - 3*b + c }, e1, e2, e3)
}
