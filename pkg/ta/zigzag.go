package ta

// Pivot is a detected swing extreme: the time step at which it occurred
// and its price.
type Pivot struct {
	Time  int64
	Price float64
}

// zigzagState tracks the running extreme of the current swing.
type zigzagState struct {
	up       bool
	highest  float64
	highTime int64
	lowest   float64
	lowTime  int64
}

// zigzagStep processes one bar. When the price retraces against the trend
// by more than pct percent of the current extreme, the extreme is emitted
// as a pivot and the direction flips; otherwise the running extreme is
// advanced. Returns the updated state and whether a pivot was emitted.
func zigzagStep(st zigzagState, t int64, price, pct float64) (zigzagState, Pivot, bool) {
	if st.up {
		if price > st.highest {
			st.highest = price
			st.highTime = t
			return st, Pivot{}, false
		}
		if st.highest-price > st.highest*pct/100 {
			piv := Pivot{Time: st.highTime, Price: st.highest}
			st.up = false
			st.lowest = price
			st.lowTime = t
			return st, piv, true
		}
		return st, Pivot{}, false
	}
	if price < st.lowest {
		st.lowest = price
		st.lowTime = t
		return st, Pivot{}, false
	}
	if price-st.lowest > st.lowest*pct/100 {
		piv := Pivot{Time: st.lowTime, Price: st.lowest}
		st.up = true
		st.highest = price
		st.highTime = t
		return st, piv, true
	}
	return st, Pivot{}, false
}

// Zigzag detects alternating swing highs and lows whose retracement
// exceeds pct percent of the running extreme. Unlike the other indicators
// the output is sparse: one Pivot per detected reversal, so the result
// length is data-dependent. Consecutive pivots strictly alternate between
// local maxima and minima.
func Zigzag(times []int64, prices []float64, pct float64) ([]Pivot, error) {
	if len(times) != len(prices) {
		return nil, ErrLengthMismatch
	}
	if len(prices) == 0 {
		return nil, ErrEmptySeries
	}
	if pct <= 0 {
		return nil, ErrInvalidPeriod
	}

	st := zigzagState{
		up:       true,
		highest:  prices[0],
		highTime: times[0],
		lowest:   prices[0],
		lowTime:  times[0],
	}
	var pivots []Pivot
	for i := 1; i < len(prices); i++ {
		var piv Pivot
		var emitted bool
		st, piv, emitted = zigzagStep(st, times[i], prices[i], pct)
		if emitted {
			pivots = append(pivots, piv)
		}
	}
	return pivots, nil
}
