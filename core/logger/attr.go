package logger

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"
)

// Attribute helpers return an empty Attr for nil or empty input, which slog
// drops, so call sites never need their own nil checks.

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// ============================================================================
// Error Handling
// ============================================================================

// Error creates an attribute for a single error under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups non-nil errors under "errors", keyed by their position.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// ============================================================================
// Timing
// ============================================================================

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed records the time since start under "elapsed".
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// ============================================================================
// Signal Graph
// ============================================================================

// Signal names the signal a record is about.
func Signal(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("signal", name)
}

// Slot labels the receiver a record is about.
func Slot(label string) slog.Attr {
	if label == "" {
		return slog.Attr{}
	}
	return slog.String("slot", label)
}

// Status records a connect/disconnect outcome.
func Status(s fmt.Stringer) slog.Attr {
	if s == nil {
		return slog.Attr{}
	}
	return slog.String("status", s.String())
}

// Policy records a registry storage policy.
func Policy(p fmt.Stringer) slog.Attr {
	if p == nil {
		return slog.Attr{}
	}
	return slog.String("policy", p.String())
}

// Connections records the connection count out of a capacity.
func Connections(n, capacity int) slog.Attr {
	return Group("connections",
		slog.Int("used", n),
		slog.Int("capacity", capacity))
}

// ============================================================================
// Generic Metadata
// ============================================================================

// ID creates an identifier attribute with a custom key.
func ID(key string, value any) slog.Attr {
	if value == nil {
		return slog.Attr{}
	}
	return slog.Any(key, value)
}

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event creates an attribute for event names.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Count creates a generic counter attribute.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Key creates a generic key-value attribute.
func Key(key string, value any) slog.Attr {
	if value == nil {
		return slog.Attr{}
	}
	return slog.Any(key, value)
}
