package ta

// OBVResult holds the on-balance volume line and its signal average.
type OBVResult struct {
	Line   []float64
	Signal []float64
}

// OBV accumulates signed volume: the line starts at 0 and each bar adds
// volume when the close rose, subtracts it when the close fell, and
// carries the prior value on an unchanged close. Signal is the trailing
// moving average of the line over signalW.
func OBV(close, volume []float64, signalW int) (OBVResult, error) {
	if len(close) != len(volume) {
		return OBVResult{}, ErrLengthMismatch
	}
	if len(close) == 0 {
		return OBVResult{}, ErrEmptySeries
	}
	if signalW < 1 {
		return OBVResult{}, ErrInvalidPeriod
	}

	line := make([]float64, len(close))
	for i := 1; i < len(close); i++ {
		switch {
		case close[i] > close[i-1]:
			line[i] = line[i-1] + volume[i]
		case close[i] < close[i-1]:
			line[i] = line[i-1] - volume[i]
		default:
			line[i] = line[i-1]
		}
	}

	signal, err := RollingMean(line, signalW)
	if err != nil {
		return OBVResult{}, err
	}
	return OBVResult{Line: line, Signal: signal}, nil
}
