package metrics

import (
	"time"
)

// Recorder provides methods for recording metrics.
type Recorder struct{}

// NewRecorder creates a new metrics recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// RecordBar records a candle being processed.
func (r *Recorder) RecordBar(symbol, feed string, timestamp time.Time) {
	BarsProcessed.WithLabelValues(symbol, feed).Inc()
	LastBarTimestamp.WithLabelValues(symbol).Set(float64(timestamp.Unix()))
}

// RecordSignal records a signal being generated.
func (r *Recorder) RecordSignal(rule, direction string) {
	SignalsGenerated.WithLabelValues(rule, direction).Inc()
}

// RecordRuleError records a rule evaluation failure.
func (r *Recorder) RecordRuleError(rule string) {
	RuleErrors.WithLabelValues(rule).Inc()
}

// RecordScanDuration records how long a scan took.
func (r *Recorder) RecordScanDuration(duration time.Duration) {
	ScanDuration.Observe(duration.Seconds())
}

// RecordFeedStatus records feed subscription status.
func (r *Recorder) RecordFeedStatus(feed string, active bool) {
	if active {
		FeedActive.WithLabelValues(feed).Set(1)
	} else {
		FeedActive.WithLabelValues(feed).Set(0)
	}
}

// RecordError records an error.
func (r *Recorder) RecordError(component string) {
	ErrorsTotal.WithLabelValues(component).Inc()
}

// Timer is a helper for measuring latency.
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer.
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the elapsed duration.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// ObserveScan observes the elapsed time as scan duration.
func (t *Timer) ObserveScan() {
	ScanDuration.Observe(t.Elapsed().Seconds())
}
