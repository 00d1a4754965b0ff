package ta

import "math"

// ADXResult holds the directional movement series.
type ADXResult struct {
	DIPlus  []float64 // +DI, positive directional indicator
	DIMinus []float64 // -DI, negative directional indicator
	ADX     []float64 // average directional index
}

// ADX computes the average directional index over the given window.
// Directional movement and true range are smoothed with Wilder's method,
// so the first w indices of every output series are NaN and the ADX line
// needs a further w bars to warm up. A flat market (DI+ + DI- == 0)
// produces NaN, which is propagated.
func ADX(high, low, close []float64, w int) (ADXResult, error) {
	if len(high) != len(low) || len(high) != len(close) {
		return ADXResult{}, ErrLengthMismatch
	}
	if len(high) == 0 {
		return ADXResult{}, ErrEmptySeries
	}
	if w < 1 {
		return ADXResult{}, ErrInvalidPeriod
	}

	n := len(high)
	plusDM := make([]float64, n)
	minusDM := make([]float64, n)
	tr := make([]float64, n)
	for i := 1; i < n; i++ {
		upMove := high[i] - high[i-1]
		downMove := low[i-1] - low[i]
		if upMove > downMove && upMove > 0 {
			plusDM[i] = upMove
		}
		if downMove > upMove && downMove > 0 {
			minusDM[i] = downMove
		}
		tr[i] = trueRange(high[i], low[i], close[i-1])
	}

	sPlus, err := WilderSmooth(plusDM, w)
	if err != nil {
		return ADXResult{}, err
	}
	sMinus, err := WilderSmooth(minusDM, w)
	if err != nil {
		return ADXResult{}, err
	}
	sTR, err := WilderSmooth(tr, w)
	if err != nil {
		return ADXResult{}, err
	}

	dip := make([]float64, n)
	dim := make([]float64, n)
	dx := make([]float64, n)
	for i := 0; i < n; i++ {
		// Wilder sums share the same scale, so the factor cancels in
		// the ratio.
		dip[i] = 100 * sPlus[i] / sTR[i]
		dim[i] = 100 * sMinus[i] / sTR[i]
		dx[i] = 100 * math.Abs(dip[i]-dim[i]) / (dip[i] + dim[i])
	}

	// The dx prefix is NaN, which would poison the Wilder seed sum.
	// Smooth only the defined tail and stitch the prefix back.
	adx := make([]float64, n)
	for i := range adx {
		adx[i] = nan
	}
	if n > w {
		sDX, err := WilderSmooth(dx[w:], w)
		if err != nil {
			return ADXResult{}, err
		}
		for i, v := range sDX {
			// Divide out the sum scale of the Wilder seed.
			adx[w+i] = v / float64(w)
		}
	}

	return ADXResult{DIPlus: dip, DIMinus: dim, ADX: adx}, nil
}
