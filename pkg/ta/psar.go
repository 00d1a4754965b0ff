package ta

import "math"

// psarState carries the trend state of the parabolic SAR between steps.
type psarState struct {
	uptrend bool
	af      float64 // acceleration factor, ratcheted toward afMax
	ep      float64 // extreme point of the current trend
	sar     float64
}

// psarStep advances the SAR by one bar. hist holds at least the last three
// highs/lows ending at the current bar; the last element is the current
// bar. Returns the updated state; the emitted SAR is state.sar.
func psarStep(st psarState, highs, lows []float64, step, max float64) psarState {
	high := highs[len(highs)-1]
	low := lows[len(lows)-1]

	st.sar += st.af * (st.ep - st.sar)

	if st.uptrend {
		if high > st.ep {
			st.ep = high
			st.af = math.Min(st.af+step, max)
		}
		if low < st.sar {
			st.uptrend = false
			st.af = step
			st.ep = low
			st.sar = maxOf(highs)
		}
	} else {
		if low < st.ep {
			st.ep = low
			st.af = math.Min(st.af+step, max)
		}
		if high > st.sar {
			st.uptrend = true
			st.af = step
			st.ep = high
			st.sar = minOf(lows)
		}
	}
	return st
}

// PSAR returns the parabolic stop-and-reverse series for the given highs
// and lows. The acceleration factor starts at step, increases by step each
// time the trend sets a new extreme, and is capped at max. On a reversal
// the SAR is reseeded from the extreme of the last three bars.
// Requires at least two bars.
func PSAR(high, low []float64, step, max float64) ([]float64, error) {
	if len(high) != len(low) {
		return nil, ErrLengthMismatch
	}
	if len(high) < 2 {
		return nil, ErrInsufficientData
	}

	out := make([]float64, len(high))
	st := psarState{
		uptrend: true,
		af:      step,
		ep:      math.Max(high[0], high[1]),
		sar:     low[0],
	}
	out[0] = st.sar
	st.sar = math.Min(low[0], low[1])
	out[1] = st.sar

	for i := 2; i < len(high); i++ {
		lo := i - 2
		st = psarStep(st, high[lo:i+1], low[lo:i+1], step, max)
		out[i] = st.sar
	}
	return out, nil
}

func maxOf(s []float64) float64 {
	max := s[0]
	for _, v := range s[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

func minOf(s []float64) float64 {
	min := s[0]
	for _, v := range s[1:] {
		if v < min {
			min = v
		}
	}
	return min
}
