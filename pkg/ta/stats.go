package ta

import "math"

// Mean returns the arithmetic mean of s.
func Mean(s []float64) (float64, error) {
	if len(s) == 0 {
		return 0, ErrEmptySeries
	}
	return mean(s), nil
}

// Variance returns the population variance of s.
func Variance(s []float64) (float64, error) {
	if len(s) == 0 {
		return 0, ErrEmptySeries
	}
	return variance(s), nil
}

// Std returns the population standard deviation of s.
func Std(s []float64) (float64, error) {
	if len(s) == 0 {
		return 0, ErrEmptySeries
	}
	return std(s), nil
}

// Covariance returns the population covariance of two parallel series.
func Covariance(a, b []float64) (float64, error) {
	if len(a) == 0 {
		return 0, ErrEmptySeries
	}
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}
	return covariance(a, b), nil
}

// Correlation returns the Pearson correlation coefficient of two parallel
// series. A zero-variance input yields NaN or Inf, which is propagated.
func Correlation(a, b []float64) (float64, error) {
	if len(a) == 0 {
		return 0, ErrEmptySeries
	}
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}
	return covariance(a, b) / (std(a) * std(b)), nil
}

// MeanAbsDev returns the mean absolute deviation of s around its mean.
func MeanAbsDev(s []float64) (float64, error) {
	if len(s) == 0 {
		return 0, ErrEmptySeries
	}
	return meanAbsDev(s), nil
}

// MeanAbsErr returns the mean absolute error between two parallel series.
func MeanAbsErr(a, b []float64) (float64, error) {
	if len(a) == 0 {
		return 0, ErrEmptySeries
	}
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}
	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}
	return sum / float64(len(a)), nil
}

// Unchecked reductions used internally by the rolling engine, where the
// window slice is guaranteed non-empty by construction.

func mean(s []float64) float64 {
	var sum float64
	for _, v := range s {
		sum += v
	}
	return sum / float64(len(s))
}

func variance(s []float64) float64 {
	m := mean(s)
	var sum float64
	for _, v := range s {
		d := v - m
		sum += d * d
	}
	return sum / float64(len(s))
}

func std(s []float64) float64 {
	return math.Sqrt(variance(s))
}

func covariance(a, b []float64) float64 {
	ma := mean(a)
	mb := mean(b)
	var sum float64
	for i := range a {
		sum += (a[i] - ma) * (b[i] - mb)
	}
	return sum / float64(len(a))
}

func meanAbsDev(s []float64) float64 {
	m := mean(s)
	var sum float64
	for _, v := range s {
		sum += math.Abs(v - m)
	}
	return sum / float64(len(s))
}
