// Package alerting provides notification capabilities for the scanner.
package alerting

import (
	"context"
	"fmt"

	"github.com/quantforge/taseries/internal/types"
)

// Severity represents the alert severity level.
type Severity int

const (
	// SeverityInfo is for informational messages.
	SeverityInfo Severity = iota
	// SeverityWarning is for warning messages.
	SeverityWarning
	// SeverityHigh is for high priority alerts.
	SeverityHigh
	// SeverityCritical is for critical alerts requiring immediate attention.
	SeverityCritical
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityHigh:
		return "HIGH"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Alerter defines the interface for sending alerts.
type Alerter interface {
	// Alert sends an alert with the given severity and message.
	Alert(ctx context.Context, severity Severity, message string, fields ...any) error
	// Name returns the name of the alerter.
	Name() string
}

// FormatFields converts variadic key-value fields to a formatted string.
func FormatFields(fields ...any) string {
	if len(fields) == 0 {
		return ""
	}

	result := ""
	for i := 0; i < len(fields)-1; i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		value := fields[i+1]
		if result != "" {
			result += "\n"
		}
		result += fmt.Sprintf("- %s: %v", key, value)
	}
	return result
}

// AlertEvent represents a pre-defined alert event type.
type AlertEvent string

const (
	// EventSignal is sent when a scan rule fires.
	EventSignal AlertEvent = "signal"
	// EventScanComplete is sent when a scan finishes.
	EventScanComplete AlertEvent = "scan_complete"
	// EventFeedError is sent when the data feed fails.
	EventFeedError AlertEvent = "feed_error"
	// EventScannerStarted is sent when the scanner starts.
	EventScannerStarted AlertEvent = "scanner_started"
	// EventScannerStopped is sent when the scanner stops.
	EventScannerStopped AlertEvent = "scanner_stopped"
)

// EventSeverity returns the default severity for an event.
func EventSeverity(event AlertEvent) Severity {
	switch event {
	case EventFeedError:
		return SeverityHigh
	case EventSignal:
		return SeverityWarning
	default:
		return SeverityInfo
	}
}

// SignalFields flattens a signal into alert fields.
func SignalFields(sig types.Signal) []any {
	return []any{
		"rule", sig.Rule,
		"symbol", sig.Symbol,
		"direction", sig.Direction.String(),
		"value", fmt.Sprintf("%.4f", sig.Value),
		"time", sig.Timestamp.Format("2006-01-02 15:04:05"),
		"reason", sig.Reason,
	}
}
