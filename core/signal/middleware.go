package signal

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/signalkit/core/logger"
)

// Middleware wraps a Slot to add behaviour around its invocation.
// Wrapped slots keep the inner slot's Kind, Equal and String, so
// DisconnectMatching and topology snapshots still see the real target.
type Middleware[T any] func(Slot[T]) Slot[T]

// Wrap applies middleware to slot. The first middleware becomes the
// outermost wrapper and runs first.
//
// Example:
//
//	slot := signal.Wrap(
//	    signal.NewFuncSlot(onClick),
//	    signal.LoggingMiddleware[int](log, "click"),
//	    slotmetrics.Middleware[int](metrics, "click"),
//	)
//	// Execution order: logging -> metrics -> onClick
func Wrap[T any](slot Slot[T], mws ...Middleware[T]) Slot[T] {
	for i := len(mws) - 1; i >= 0; i-- {
		if mws[i] != nil {
			slot = mws[i](slot)
		}
	}
	return slot
}

// Unwrap strips every middleware layer and returns the innermost slot.
func Unwrap[T any](slot Slot[T]) Slot[T] {
	for {
		w, ok := slot.(interface{ Unwrap() Slot[T] })
		if !ok {
			return slot
		}
		slot = w.Unwrap()
	}
}

// WrapFunc builds a middleware-wrapped slot from a plain function that
// receives the payload and the next slot.
func WrapFunc[T any](next Slot[T], fn func(v T, next Slot[T])) Slot[T] {
	return &wrappedSlot[T]{next: next, fn: fn}
}

type wrappedSlot[T any] struct {
	next Slot[T]
	fn   func(v T, next Slot[T])
}

func (w *wrappedSlot[T]) Invoke(v T) {
	w.fn(v, w.next)
}

func (w *wrappedSlot[T]) Kind() Kind {
	return w.next.Kind()
}

func (w *wrappedSlot[T]) Equal(other Slot[T]) bool {
	return w.next.Equal(other)
}

func (w *wrappedSlot[T]) String() string {
	return slotLabel(w.next)
}

func (w *wrappedSlot[T]) Unwrap() Slot[T] {
	return w.next
}

// LoggingMiddleware logs every invocation at debug level with its duration.
// The signal core never logs by itself; this is the opt-in hook for it.
//
// Example:
//
//	click.Connect(signal.Wrap(slot, signal.LoggingMiddleware[int](log, "click")))
func LoggingMiddleware[T any](log *slog.Logger, signalName string) Middleware[T] {
	return func(next Slot[T]) Slot[T] {
		if log == nil {
			return next
		}
		label := slotLabel(next)
		return WrapFunc(next, func(v T, next Slot[T]) {
			start := time.Now()
			next.Invoke(v)
			log.Debug("slot invoked",
				logger.Signal(signalName),
				logger.Slot(label),
				logger.Elapsed(start))
		})
	}
}
