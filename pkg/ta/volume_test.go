package ta

import (
	"math"
	"testing"
)

func TestVWAP(t *testing.T) {
	high := []float64{12, 14}
	low := []float64{10, 12}
	close := []float64{11, 13}
	volume := []float64{100, 300}

	got, err := VWAP(high, low, close, volume)
	if err != nil {
		t.Fatalf("VWAP: %v", err)
	}
	// Bar 0: typical price 11. Bar 1: (11*100 + 13*300) / 400.
	seriesEqual(t, got, []float64{11, (11*100 + 13*300) / 400.0})
}

func TestVWAP_ZeroVolumePropagates(t *testing.T) {
	got, err := VWAP([]float64{1}, []float64{1}, []float64{1}, []float64{0})
	if err != nil {
		t.Fatalf("VWAP: %v", err)
	}
	if !math.IsNaN(got[0]) {
		t.Errorf("vwap with zero volume = %v, want NaN", got[0])
	}
}

func TestVolumeByPrice(t *testing.T) {
	close := []float64{1, 1, 2, 3}
	volume := []float64{5, 5, 10, 20}

	got, err := VolumeByPrice(close, volume, 2)
	if err != nil {
		t.Fatalf("VolumeByPrice: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("levels = %d, want 2", len(got))
	}
	// [1, 2) holds the two closes at 1; [2, 3] holds the rest.
	if got[0].Volume != 10 {
		t.Errorf("levels[0].Volume = %v, want 10", got[0].Volume)
	}
	if got[1].Volume != 30 {
		t.Errorf("levels[1].Volume = %v, want 30", got[1].Volume)
	}
}

func TestVolumeByPrice_DegenerateRange(t *testing.T) {
	close := []float64{5, 5, 5}
	volume := []float64{1, 2, 3}

	got, err := VolumeByPrice(close, volume, 3)
	if err != nil {
		t.Fatalf("VolumeByPrice: %v", err)
	}
	// All buckets collapse to [5, 5]; the volume lands in the top one.
	if got[len(got)-1].Volume != 6 {
		t.Errorf("top bucket volume = %v, want 6", got[len(got)-1].Volume)
	}
}

func TestForceIndex(t *testing.T) {
	close := []float64{10, 11, 10}
	volume := []float64{100, 200, 300}

	got, err := ForceIndex(close, volume, 2)
	if err != nil {
		t.Fatalf("ForceIndex: %v", err)
	}
	if len(got) != len(close) {
		t.Fatalf("len = %d, want %d", len(got), len(close))
	}
	// Raw force: [0, +200, -300]; the EMA seed is the mean of the first
	// two, and the end of the series must be pulled negative.
	if got[len(got)-1] >= 0 {
		t.Errorf("force end = %v, want negative after the down bar", got[len(got)-1])
	}
}
