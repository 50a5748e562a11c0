package signal_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signalkit/core/signal"
)

func TestWrap_Order(t *testing.T) {
	t.Parallel()

	var order []string
	layer := func(name string) signal.Middleware[int] {
		return func(next signal.Slot[int]) signal.Slot[int] {
			return signal.WrapFunc(next, func(v int, next signal.Slot[int]) {
				order = append(order, name+":before")
				next.Invoke(v)
				order = append(order, name+":after")
			})
		}
	}

	inner := signal.NewFuncSlot(func(int) { order = append(order, "slot") })
	slot := signal.Wrap[int](inner, layer("outer"), nil, layer("inner"))
	slot.Invoke(1)

	assert.Equal(t, []string{
		"outer:before",
		"inner:before",
		"slot",
		"inner:after",
		"outer:after",
	}, order)
}

func TestWrap_NoMiddlewareReturnsSlot(t *testing.T) {
	t.Parallel()

	inner := signal.NewFuncSlot(func(int) {})
	assert.Same(t, inner, signal.Wrap[int](inner))
}

func TestWrap_KeepsIdentity(t *testing.T) {
	t.Parallel()

	r := &receiver{}
	inner := signal.NewMethodSlot(r, (*receiver).OnClick)
	passthrough := func(next signal.Slot[int]) signal.Slot[int] {
		return signal.WrapFunc(next, func(v int, next signal.Slot[int]) { next.Invoke(v) })
	}
	wrapped := signal.Wrap[int](inner, passthrough, passthrough)

	assert.Equal(t, signal.KindMethod, wrapped.Kind())
	assert.Same(t, inner, signal.Unwrap(wrapped))
	assert.True(t, wrapped.Equal(signal.NewMethodSlot(r, (*receiver).OnClick)))
	assert.True(t, signal.NewMethodSlot(r, (*receiver).OnClick).Equal(wrapped))
	assert.Equal(t, "(*signal_test.receiver).OnClick", wrapped.(interface{ String() string }).String())

	s := signal.New[int]()
	require.True(t, s.Connect(wrapped).OK())
	s.Emit(3)
	assert.Equal(t, []int{3}, r.got)

	assert.Equal(t, signal.StatusDisconnected, s.DisconnectMatching(inner))
	assert.Zero(t, s.Connections())
}

func TestLoggingMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("logs each invocation", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		calls := 0
		s := signal.New[int]()
		s.Connect(signal.Wrap[int](
			signal.NewFuncSlot(func(int) { calls++ }),
			signal.LoggingMiddleware[int](log, "click"),
		))
		s.Emit(1)
		s.Emit(2)

		assert.Equal(t, 2, calls)
		out := buf.String()
		assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("slot invoked")))
		assert.Contains(t, out, "signal=click")
		assert.Contains(t, out, "elapsed=")
	})

	t.Run("silent above debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

		slot := signal.Wrap[int](signal.NewFuncSlot(func(int) {}), signal.LoggingMiddleware[int](log, "click"))
		slot.Invoke(1)

		assert.Empty(t, buf.String())
	})

	t.Run("nil logger is identity", func(t *testing.T) {
		t.Parallel()

		inner := signal.NewFuncSlot(func(int) {})
		assert.Same(t, inner, signal.Wrap[int](inner, signal.LoggingMiddleware[int](nil, "click")))
	})
}
