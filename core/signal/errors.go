package signal

import (
	"errors"
	"fmt"
)

var (
	// ErrAtCapacity is returned when a connection would exceed the signal capacity.
	ErrAtCapacity = errors.New("signal is at capacity")

	// ErrNotFound is returned when disconnecting a target that is not connected.
	ErrNotFound = errors.New("target is not connected")

	// ErrCycle is returned when a forwarding connection would close a cycle.
	ErrCycle = errors.New("connection would create a forwarding cycle")

	// ErrNilTarget is returned when connecting or disconnecting a nil slot or signal.
	ErrNilTarget = errors.New("nil connection target")

	// ErrDepthExceeded is the cause of the panic raised when dispatch nests deeper than the configured limit.
	ErrDepthExceeded = errors.New("dispatch depth exceeded")
)

// DepthError is the panic value raised by Emit when forwarding nests deeper
// than the emitting signal's max depth. It only happens on cyclic graphs
// (AllowCycles) or on absurdly deep chains.
type DepthError struct {
	Signal string // ID of the signal that refused to recurse
	Limit  int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("%s: signal %s at limit %d", ErrDepthExceeded, e.Signal, e.Limit)
}

func (e *DepthError) Unwrap() error {
	return ErrDepthExceeded
}
