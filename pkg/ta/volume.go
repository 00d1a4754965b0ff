package ta

// VWAP returns the volume-weighted average price: the running sum of
// typical price times volume divided by the running sum of volume.
// Zero cumulative volume yields NaN, which is propagated.
func VWAP(high, low, close, volume []float64) ([]float64, error) {
	if len(high) != len(low) || len(high) != len(close) || len(high) != len(volume) {
		return nil, ErrLengthMismatch
	}
	if len(high) == 0 {
		return nil, ErrEmptySeries
	}
	out := make([]float64, len(high))
	var pvSum, vSum float64
	for i := range high {
		tp := (high[i] + low[i] + close[i]) / 3
		pvSum += tp * volume[i]
		vSum += volume[i]
		out[i] = pvSum / vSum
	}
	return out, nil
}

// PriceLevel is one bucket of a volume-by-price histogram.
type PriceLevel struct {
	Low    float64 // inclusive lower bound
	High   float64 // exclusive upper bound, inclusive for the top bucket
	Volume float64
}

// VolumeByPrice buckets traded volume into nBins equal price ranges
// between the lowest and highest close. A degenerate range (all closes
// equal) collapses every bucket to the same bounds and the volume lands
// in the top bucket.
func VolumeByPrice(close, volume []float64, nBins int) ([]PriceLevel, error) {
	if nBins < 1 {
		return nil, ErrInvalidPeriod
	}
	if len(close) != len(volume) {
		return nil, ErrLengthMismatch
	}
	if len(close) == 0 {
		return nil, ErrEmptySeries
	}

	bottom := minOf(close)
	top := maxOf(close)
	step := (top - bottom) / float64(nBins)

	levels := make([]PriceLevel, nBins)
	for i := range levels {
		levels[i].Low = bottom + float64(i)*step
		levels[i].High = bottom + float64(i+1)*step
	}

	for i, c := range close {
		for j := range levels {
			last := j == nBins-1
			if c >= levels[j].Low && (c < levels[j].High || (last && c <= levels[j].High)) {
				levels[j].Volume += volume[i]
				break
			}
		}
	}
	return levels, nil
}

// ForceIndex returns Elder's force index: the EMA of per-bar price change
// times volume. The first bar has no prior close and contributes 0.
func ForceIndex(close, volume []float64, w int) ([]float64, error) {
	if len(close) != len(volume) {
		return nil, ErrLengthMismatch
	}
	if len(close) == 0 {
		return nil, ErrEmptySeries
	}
	raw := make([]float64, len(close))
	for i := 1; i < len(close); i++ {
		raw[i] = (close[i] - close[i-1]) * volume[i]
	}
	return EMA(raw, w)
}
