package ta

// MACDResult holds the MACD line and its signal line.
type MACDResult struct {
	Line   []float64
	Signal []float64
}

// MACD returns the moving average convergence/divergence: the difference
// between a fast and a slow EMA of the close, with an EMA of that
// difference as the signal line.
func MACD(close []float64, fastW, slowW, signalW int) (MACDResult, error) {
	fast, err := EMA(close, fastW)
	if err != nil {
		return MACDResult{}, err
	}
	slow, err := EMA(close, slowW)
	if err != nil {
		return MACDResult{}, err
	}
	line, err := Apply2(func(f, s float64) float64 { return f - s }, fast, slow)
	if err != nil {
		return MACDResult{}, err
	}
	signal, err := EMA(line, signalW)
	if err != nil {
		return MACDResult{}, err
	}
	return MACDResult{Line: line, Signal: signal}, nil
}
