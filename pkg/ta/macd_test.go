package ta

import "testing"

func TestMACD_ConstantSeriesIsZero(t *testing.T) {
	close := []float64{5, 5, 5, 5, 5, 5, 5, 5}
	got, err := MACD(close, 3, 6, 2)
	if err != nil {
		t.Fatalf("MACD: %v", err)
	}
	for i := range close {
		if !almostEqual(got.Line[i], 0) {
			t.Errorf("line[%d] = %v, want 0", i, got.Line[i])
		}
		if !almostEqual(got.Signal[i], 0) {
			t.Errorf("signal[%d] = %v, want 0", i, got.Signal[i])
		}
	}
}

func TestMACD_PositiveInUptrend(t *testing.T) {
	close := make([]float64, 30)
	for i := range close {
		close[i] = float64(i + 1)
	}
	got, err := MACD(close, 3, 9, 3)
	if err != nil {
		t.Fatalf("MACD: %v", err)
	}
	// The fast average hugs a rising series more closely than the slow
	// one, so the line settles positive.
	last := len(close) - 1
	if got.Line[last] <= 0 {
		t.Errorf("line end = %v, want positive in an uptrend", got.Line[last])
	}
	if got.Signal[last] <= 0 {
		t.Errorf("signal end = %v, want positive in an uptrend", got.Signal[last])
	}
}

func TestMACD_PropagatesPeriodErrors(t *testing.T) {
	if _, err := MACD([]float64{1, 2, 3}, 0, 2, 2); err != ErrInvalidPeriod {
		t.Errorf("fast 0: err = %v, want ErrInvalidPeriod", err)
	}
	if _, err := MACD([]float64{1, 2}, 1, 5, 1); err != ErrInsufficientData {
		t.Errorf("slow too long: err = %v, want ErrInsufficientData", err)
	}
}
