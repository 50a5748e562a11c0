package signal_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/signalkit/core/signal"
)

func TestGuarded_ConcurrentConnectEmit(t *testing.T) {
	t.Parallel()

	const (
		workers = 8
		emits   = 50
	)

	var hits atomic.Int64
	g := signal.NewGuarded[int](
		signal.WithPolicy(signal.PolicyDynamic),
		signal.WithCapacity(workers),
	)

	eg, _ := errgroup.WithContext(context.Background())
	for range workers {
		eg.Go(func() error {
			slot := signal.NewFuncSlot(func(int) { hits.Add(1) })
			if st := g.Connect(slot); !st.OK() {
				return st.Err()
			}
			for range emits {
				g.Emit(1)
			}
			if st := g.Disconnect(slot); !st.OK() {
				return st.Err()
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())

	assert.Zero(t, g.Connections())
	// Each emit reaches at least the emitting worker's own slot.
	assert.GreaterOrEqual(t, hits.Load(), int64(workers*emits))
}

func TestGuarded_Delegates(t *testing.T) {
	t.Parallel()

	calls := 0
	g := signal.NewGuarded[int](signal.WithName("guarded"))
	child := signal.New[int]()
	slot := signal.NewFuncSlot(func(int) { calls++ })

	assert.Equal(t, signal.StatusConnected, g.Connect(slot))
	assert.Equal(t, signal.StatusConnected, g.ConnectSignal(child))
	assert.Equal(t, signal.StatusCycle, g.ConnectSignal(g.Unguarded()))
	assert.Equal(t, 2, g.Connections())
	assert.Equal(t, "guarded", g.Topology().Name)

	g.Emit(1)
	assert.Equal(t, 1, calls)

	assert.Equal(t, signal.StatusNotFound, g.DisconnectMatching(signal.NewFuncSlot(func(int) {})), "closure from another literal")
	assert.Equal(t, signal.StatusDisconnected, g.DisconnectSignal(child))
	assert.Equal(t, 1, g.Connections())
	assert.Equal(t, signal.StatusDisconnected, g.Disconnect(slot))
	assert.Zero(t, g.Connections())
}

func TestGuard_WrapsExisting(t *testing.T) {
	t.Parallel()

	s := signal.New[int]()
	g := signal.Guard(s)
	assert.Same(t, s, g.Unguarded())
}
