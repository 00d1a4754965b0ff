// Package ta provides technical indicator calculations over time-ordered
// series. Inputs and outputs are float64 slices indexed by time step;
// NaN marks indices that are not yet computable, and degenerate arithmetic
// (zero-range divisions) propagates as NaN or Inf rather than erroring.
package ta

// Apply maps op over every element of s, producing a new series of the
// same length. The input is never modified.
func Apply(op func(float64) float64, s []float64) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = op(v)
	}
	return out
}

// Apply2 combines two parallel series elementwise: out[i] = op(a[i], b[i]).
// Returns ErrLengthMismatch if the series differ in length.
func Apply2(op func(a, b float64) float64, a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, ErrLengthMismatch
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = op(a[i], b[i])
	}
	return out, nil
}

// Apply3 combines three parallel series elementwise:
// out[i] = op(a[i], b[i], c[i]).
// Returns ErrLengthMismatch if the series differ in length.
func Apply3(op func(a, b, c float64) float64, a, b, c []float64) ([]float64, error) {
	if len(a) != len(b) || len(a) != len(c) {
		return nil, ErrLengthMismatch
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = op(a[i], b[i], c[i])
	}
	return out, nil
}
