package ta

import "errors"

// Sentinel errors returned by indicator functions on precondition
// violations. Insufficient history inside an otherwise valid call is
// reported through NaN prefixes in the output, never through an error.
var (
	ErrEmptySeries      = errors.New("empty series")
	ErrInvalidPeriod    = errors.New("invalid period")
	ErrLengthMismatch   = errors.New("series length mismatch")
	ErrInsufficientData = errors.New("insufficient data")
)
