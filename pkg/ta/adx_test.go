package ta

import (
	"math"
	"testing"
)

func trendingBars(n int) (high, low, close []float64) {
	high = make([]float64, n)
	low = make([]float64, n)
	close = make([]float64, n)
	for i := 0; i < n; i++ {
		f := float64(i)
		high[i] = f + 1
		low[i] = f
		close[i] = f + 0.5
	}
	return high, low, close
}

func TestADX_WarmupIsNaN(t *testing.T) {
	high, low, close := trendingBars(20)
	w := 3
	got, err := ADX(high, low, close, w)
	if err != nil {
		t.Fatalf("ADX: %v", err)
	}
	for i := 0; i < w; i++ {
		if !math.IsNaN(got.DIPlus[i]) || !math.IsNaN(got.DIMinus[i]) {
			t.Errorf("DI at %d should be NaN, got %v / %v", i, got.DIPlus[i], got.DIMinus[i])
		}
	}
	// The ADX line needs a second Wilder warm-up on top of the first.
	for i := 0; i < 2*w; i++ {
		if !math.IsNaN(got.ADX[i]) {
			t.Errorf("ADX[%d] = %v, want NaN", i, got.ADX[i])
		}
	}
	if math.IsNaN(got.ADX[2*w]) {
		t.Errorf("ADX[%d] should be defined", 2*w)
	}
}

func TestADX_SteadyUptrend(t *testing.T) {
	high, low, close := trendingBars(20)
	w := 3
	got, err := ADX(high, low, close, w)
	if err != nil {
		t.Fatalf("ADX: %v", err)
	}

	// Every bar moves up by 1 with a true range of 1.5, so
	// +DI = 100 * (1 / 1.5) and -DI = 0 at every defined index.
	for i := w; i < 20; i++ {
		if !almostEqual(got.DIPlus[i], 100.0/1.5) {
			t.Errorf("DIPlus[%d] = %v, want %v", i, got.DIPlus[i], 100.0/1.5)
		}
		if !almostEqual(got.DIMinus[i], 0) {
			t.Errorf("DIMinus[%d] = %v, want 0", i, got.DIMinus[i])
		}
	}

	// All directional movement on one side: DX is 100 everywhere, so the
	// smoothed ADX settles at 100 as well.
	for i := 2 * w; i < 20; i++ {
		if got.ADX[i] < 99.9 || got.ADX[i] > 100.1 {
			t.Errorf("ADX[%d] = %v, want 100", i, got.ADX[i])
		}
	}
}

func TestADX_FlatMarketPropagatesNaN(t *testing.T) {
	n := 12
	high := make([]float64, n)
	low := make([]float64, n)
	close := make([]float64, n)
	for i := range high {
		high[i], low[i], close[i] = 5, 5, 5
	}
	got, err := ADX(high, low, close, 3)
	if err != nil {
		t.Fatalf("ADX: %v", err)
	}
	// Zero true range divides zero by zero; nothing is special-cased.
	for i := 3; i < n; i++ {
		if !math.IsNaN(got.DIPlus[i]) {
			t.Errorf("DIPlus[%d] = %v, want NaN in a flat market", i, got.DIPlus[i])
		}
	}
}

func TestADX_Preconditions(t *testing.T) {
	if _, err := ADX([]float64{1}, []float64{1, 2}, []float64{1}, 3); err != ErrLengthMismatch {
		t.Errorf("mismatch: err = %v, want ErrLengthMismatch", err)
	}
	if _, err := ADX(nil, nil, nil, 3); err != ErrEmptySeries {
		t.Errorf("empty: err = %v, want ErrEmptySeries", err)
	}
	if _, err := ADX([]float64{1}, []float64{1}, []float64{1}, 0); err != ErrInvalidPeriod {
		t.Errorf("period 0: err = %v, want ErrInvalidPeriod", err)
	}
}
