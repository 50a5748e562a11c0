package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/signalkit/core/logger"
	"github.com/dmitrymomot/signalkit/core/signal"
)

func testConfig() Config {
	return Config{
		AppName:    "test",
		Iterations: 3,
		Workers:    4,
		Signal: signal.Config{
			DefaultCapacity: signal.DefaultCapacity,
			Policy:          signal.PolicyFixed,
			MaxDepth:        signal.DefaultMaxDepth,
		},
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	for _, policy := range []signal.Policy{signal.PolicyFixed, signal.PolicyDynamic} {
		t.Run(policy.String(), func(t *testing.T) {
			t.Parallel()

			cfg := testConfig()
			cfg.Signal.Policy = policy

			var out bytes.Buffer
			reg := prometheus.NewPedanticRegistry()
			rep, err := run(context.Background(), cfg, logger.Discard(), reg, &out)
			require.NoError(t, err)

			assert.Equal(t, signal.StatusAtCapacity, rep.ThirdStatus, "third click receiver must be refused")
			assert.Equal(t, signal.StatusCycle, rep.CycleStatus, "relay back into the emitter must be refused")

			assert.Equal(t, 3, rep.BaseClicks)
			assert.Equal(t, 3, rep.SecondClicks)
			assert.Zero(t, rep.ThirdClicks)
			assert.Equal(t, 3, rep.Tests)
			assert.Equal(t, 3, rep.Voids)
			assert.Equal(t, 3, rep.Redirects)
			assert.Equal(t, int64(4*3), rep.ConcurrentHit)

			dec := yaml.NewDecoder(&out)
			var docs []signal.Node
			for {
				var n signal.Node
				if err := dec.Decode(&n); err != nil {
					break
				}
				docs = append(docs, n)
			}
			require.Len(t, docs, 4)
			assert.Equal(t, "emitter.click", docs[0].Name)
			assert.Equal(t, 2, docs[0].Connections)
			assert.Equal(t, policy.String(), docs[0].Policy)

			redirect := docs[2]
			assert.Equal(t, "emitter.redirect", redirect.Name)
			require.Len(t, redirect.Forwards, 1)
			assert.Equal(t, "second.onRedirect", redirect.Forwards[0].Name)
			require.Len(t, redirect.Forwards[0].Slots, 1)
			assert.Equal(t, "method", redirect.Forwards[0].Slots[0].Kind)

			// Series exist from wrap time, so the refused receiver reports zero.
			n, err := testutil.GatherAndCount(reg, "demo_signal_slot_invocations_total")
			require.NoError(t, err)
			assert.Equal(t, 3, n)
			expected := `
# HELP demo_signal_slot_invocations_total Number of slot invocations per signal.
# TYPE demo_signal_slot_invocations_total counter
demo_signal_slot_invocations_total{signal="emitter.click",slot="(*main.baseReceiver).handleClick"} 3
demo_signal_slot_invocations_total{signal="emitter.click",slot="(*main.secondReceiver).handleClick"} 3
demo_signal_slot_invocations_total{signal="emitter.click",slot="(*main.thirdReceiver).handleClick"} 0
`
			assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "demo_signal_slot_invocations_total"))
		})
	}
}

func TestRun_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := run(ctx, testConfig(), logger.Discard(), nil, &bytes.Buffer{})
	require.ErrorIs(t, err, context.Canceled)
}
