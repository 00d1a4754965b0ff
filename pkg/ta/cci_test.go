package ta

import (
	"math"
	"testing"
)

func TestCCI_FirstIndexOverride(t *testing.T) {
	high := []float64{1, 2, 3}
	low := []float64{1, 2, 3}
	close := []float64{1, 2, 3}
	got, err := CCI(high, low, close, 2)
	if err != nil {
		t.Fatalf("CCI: %v", err)
	}
	// The deviation at index 0 is forced to +Inf, so the first output is
	// 0 rather than 0/0.
	if got[0] != 0 {
		t.Errorf("cci[0] = %v, want 0", got[0])
	}
	// Window [1 2]: mean 1.5, mean abs dev 0.5.
	want := (2 - 1.5) / (0.015 * 0.5)
	if !almostEqual(got[1], want) {
		t.Errorf("cci[1] = %v, want %v", got[1], want)
	}
}

func TestCCI_FlatWindowPropagatesNaN(t *testing.T) {
	high := []float64{5, 5, 5, 5}
	low := []float64{5, 5, 5, 5}
	close := []float64{5, 5, 5, 5}
	got, err := CCI(high, low, close, 2)
	if err != nil {
		t.Fatalf("CCI: %v", err)
	}
	if got[0] != 0 {
		t.Errorf("cci[0] = %v, want 0", got[0])
	}
	// Later flat windows have zero deviation and are left alone.
	for i := 1; i < len(got); i++ {
		if !math.IsNaN(got[i]) {
			t.Errorf("cci[%d] = %v, want NaN", i, got[i])
		}
	}
}

func TestCCI_Preconditions(t *testing.T) {
	if _, err := CCI([]float64{1}, []float64{1}, []float64{1}, 0); err != ErrInvalidPeriod {
		t.Errorf("period 0: err = %v, want ErrInvalidPeriod", err)
	}
	if _, err := CCI([]float64{1, 2}, []float64{1}, []float64{1}, 2); err != ErrLengthMismatch {
		t.Errorf("mismatch: err = %v, want ErrLengthMismatch", err)
	}
}
