package ta

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	got, err := Mean([]float64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("Mean: %v", err)
	}
	if got != 2.5 {
		t.Errorf("Mean = %v, want 2.5", got)
	}

	if _, err := Mean(nil); err != ErrEmptySeries {
		t.Errorf("empty: err = %v, want ErrEmptySeries", err)
	}
}

func TestVarianceStd(t *testing.T) {
	s := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	v, err := Variance(s)
	if err != nil {
		t.Fatalf("Variance: %v", err)
	}
	if !almostEqual(v, 4) {
		t.Errorf("Variance = %v, want 4", v)
	}

	sd, err := Std(s)
	if err != nil {
		t.Fatalf("Std: %v", err)
	}
	if !almostEqual(sd, 2) {
		t.Errorf("Std = %v, want 2", sd)
	}
}

func TestCovarianceCorrelation(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{2, 4, 6, 8}

	cov, err := Covariance(a, b)
	if err != nil {
		t.Fatalf("Covariance: %v", err)
	}
	if !almostEqual(cov, 2.5) {
		t.Errorf("Covariance = %v, want 2.5", cov)
	}

	corr, err := Correlation(a, b)
	if err != nil {
		t.Fatalf("Correlation: %v", err)
	}
	if !almostEqual(corr, 1) {
		t.Errorf("Correlation = %v, want 1", corr)
	}

	inv := []float64{8, 6, 4, 2}
	corr, err = Correlation(a, inv)
	if err != nil {
		t.Fatalf("Correlation: %v", err)
	}
	if !almostEqual(corr, -1) {
		t.Errorf("Correlation = %v, want -1", corr)
	}

	if _, err := Covariance(a, []float64{1}); err != ErrLengthMismatch {
		t.Errorf("mismatch: err = %v, want ErrLengthMismatch", err)
	}
}

func TestCorrelation_ZeroVariancePropagates(t *testing.T) {
	flat := []float64{5, 5, 5}
	got, err := Correlation(flat, []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("Correlation: %v", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("Correlation of flat series = %v, want NaN", got)
	}
}

func TestMeanAbsDev(t *testing.T) {
	got, err := MeanAbsDev([]float64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("MeanAbsDev: %v", err)
	}
	if !almostEqual(got, 1) {
		t.Errorf("MeanAbsDev = %v, want 1", got)
	}
}

func TestMeanAbsErr(t *testing.T) {
	got, err := MeanAbsErr([]float64{1, 2, 3}, []float64{2, 2, 5})
	if err != nil {
		t.Fatalf("MeanAbsErr: %v", err)
	}
	if !almostEqual(got, 1) {
		t.Errorf("MeanAbsErr = %v, want 1", got)
	}
}
