package types

import "errors"

// Sentinel errors for the scanner.
var (
	// Data errors
	ErrNoData        = errors.New("no candle data available")
	ErrInvalidData   = errors.New("invalid candle data")
	ErrInvalidSymbol = errors.New("invalid symbol")

	// Validation errors
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrUnknownRule   = errors.New("unknown scan rule")
)
