package signal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/signalkit/core/signal"
)

func TestOptions_Defaults(t *testing.T) {
	t.Parallel()

	s := signal.New[int]()
	assert.Equal(t, signal.DefaultCapacity, s.Capacity())
	assert.Equal(t, signal.PolicyFixed, s.Policy())
	assert.Empty(t, s.Name())
}

func TestWithCapacity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   int
		want int
	}{
		{"positive", 10, 10},
		{"zero ignored", 0, signal.DefaultCapacity},
		{"negative ignored", -4, signal.DefaultCapacity},
		{"clamped", signal.MaxCapacity + 1, signal.MaxCapacity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, signal.New[int](signal.WithCapacity(tt.in)).Capacity())
		})
	}
}

func TestWithPolicy_IgnoresUnknown(t *testing.T) {
	t.Parallel()

	s := signal.New[int](signal.WithPolicy(signal.PolicyDynamic), signal.WithPolicy(signal.Policy(42)))
	assert.Equal(t, signal.PolicyDynamic, s.Policy())
}

func TestWithConfig(t *testing.T) {
	t.Parallel()

	cfg := signal.Config{
		DefaultCapacity: 5,
		Policy:          signal.PolicyDynamic,
		AllowCycles:     true,
		MaxDepth:        4,
	}

	s := signal.New[int](signal.WithConfig(cfg))
	assert.Equal(t, 5, s.Capacity())
	assert.Equal(t, signal.PolicyDynamic, s.Policy())
	assert.Equal(t, signal.StatusConnected, s.ConnectSignal(s), "cycles allowed")

	overridden := signal.New[int](signal.WithConfig(cfg), signal.WithCapacity(1))
	assert.Equal(t, 1, overridden.Capacity(), "later options win")

	zero := signal.New[int](signal.WithConfig(signal.Config{}))
	assert.Equal(t, signal.DefaultCapacity, zero.Capacity())
	assert.Equal(t, signal.StatusCycle, zero.ConnectSignal(zero))
}

func TestStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status signal.Status
		str    string
		ok     bool
		err    error
	}{
		{signal.StatusConnected, "connected", true, nil},
		{signal.StatusDisconnected, "disconnected", true, nil},
		{signal.StatusAtCapacity, "at_capacity", false, signal.ErrAtCapacity},
		{signal.StatusNotFound, "not_found", false, signal.ErrNotFound},
		{signal.StatusCycle, "cycle", false, signal.ErrCycle},
		{signal.StatusNil, "nil_target", false, signal.ErrNilTarget},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.str, tt.status.String())
			assert.Equal(t, tt.ok, tt.status.OK())
			if tt.err == nil {
				assert.NoError(t, tt.status.Err())
			} else {
				assert.ErrorIs(t, tt.status.Err(), tt.err)
			}
		})
	}
}

func TestDepthError(t *testing.T) {
	t.Parallel()

	err := &signal.DepthError{Signal: "abc", Limit: 3}
	assert.ErrorIs(t, err, signal.ErrDepthExceeded)
	assert.Contains(t, err.Error(), "abc")
	assert.Contains(t, err.Error(), "3")
}
