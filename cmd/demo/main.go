package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	ossignal "os/signal"
	"sync/atomic"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/signalkit/core/config"
	"github.com/dmitrymomot/signalkit/core/logger"
	"github.com/dmitrymomot/signalkit/core/signal"
	"github.com/dmitrymomot/signalkit/pkg/slotmetrics"
)

func main() {
	ctx, stop := ossignal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	config.MustLoad(&cfg)

	opts := []logger.Option{
		logger.WithDevelopment(cfg.AppName),
		logger.WithLevel(cfg.LogLevel),
		logger.WithOutput(os.Stderr),
	}
	if cfg.JSONLogs {
		opts = append(opts, logger.WithJSONFormatter())
	}
	log := logger.New(opts...)

	reg := prometheus.NewRegistry()
	if _, err := run(ctx, cfg, log, reg, os.Stdout); err != nil {
		log.Error("demo failed", logger.Error(err))
		os.Exit(1)
	}
	logInvocations(log, reg)
}

// logInvocations reports the slot counters collected during the run.
func logInvocations(log *slog.Logger, g prometheus.Gatherer) {
	families, err := g.Gather()
	if err != nil {
		log.Warn("failed to gather metrics", logger.Error(err))
		return
	}
	for _, mf := range families {
		if mf.GetType() != dto.MetricType_COUNTER {
			continue
		}
		for _, m := range mf.GetMetric() {
			attrs := []any{logger.Key("metric", mf.GetName())}
			for _, lp := range m.GetLabel() {
				attrs = append(attrs, logger.Key(lp.GetName(), lp.GetValue()))
			}
			attrs = append(attrs, logger.Key("value", m.GetCounter().GetValue()))
			log.Info("slot invocations", attrs...)
		}
	}
}

// report counts what every receiver saw, so tests can check the wiring.
type report struct {
	BaseClicks    int
	SecondClicks  int
	ThirdClicks   int
	Tests         int
	Voids         int
	Redirects     int
	ThirdStatus   signal.Status
	CycleStatus   signal.Status
	ConcurrentHit int64
}

func run(ctx context.Context, cfg Config, log *slog.Logger, reg prometheus.Registerer, out io.Writer) (report, error) {
	var rep report

	metrics, err := slotmetrics.New(reg, slotmetrics.WithNamespace("demo"))
	if err != nil {
		return rep, fmt.Errorf("failed to register slot metrics: %w", err)
	}

	em := newEmitter(cfg.Signal)
	instrumentClick := func(slot signal.Slot[int]) signal.Slot[int] {
		return signal.Wrap(slot,
			signal.LoggingMiddleware[int](log, em.click.Name()),
			slotmetrics.Middleware[int](metrics, em.click.Name()),
		)
	}
	base := newBaseReceiver(log.With(logger.Component("base_receiver")))
	second := newSecondReceiver(log.With(logger.Component("second_receiver")), cfg.Signal)
	third := newThirdReceiver(log.With(logger.Component("third_receiver")))

	// Scenario 1: the click signal takes two connections; the third is refused.
	connect(log, em.click, instrumentClick(base.onClick))
	connect(log, em.click, instrumentClick(second.onClick))
	rep.ThirdStatus = connect(log, em.click, instrumentClick(third.onClick))

	// Scenario 2: two-argument payload.
	connect(log, em.test, base.test)

	// Scenario 3: redirect emitter -> second receiver -> base receiver.
	// Wiring the relay back into the emitter would loop forever and is refused.
	forward(log, em.redirect, second.onRedirect)
	rep.CycleStatus = forward(log, second.onRedirect, em.redirect)
	connect(log, second.onRedirect, base.onRedirect)

	// Scenario 4: zero-argument payload.
	connect(log, em.voidTest, base.voidTest)

	for i := 0; i < cfg.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		log.Info("emitting", logger.Count("iteration", i+1))

		em.click.Emit(42)
		signal.Emit2(em.test, 24, float32(3.14))
		em.redirect.Emit(true)
		signal.Notify(em.voidTest)
	}

	for _, n := range []signal.Node{
		em.click.Topology(),
		em.test.Topology(),
		em.redirect.Topology(),
		em.voidTest.Topology(),
	} {
		data, err := n.YAML()
		if err != nil {
			return rep, err
		}
		if _, err := fmt.Fprintf(out, "---\n%s", data); err != nil {
			return rep, fmt.Errorf("failed to write topology: %w", err)
		}
	}

	hits, err := runConcurrent(ctx, cfg, log)
	if err != nil {
		return rep, err
	}

	rep.BaseClicks = base.clicks
	rep.SecondClicks = second.clicks
	rep.ThirdClicks = third.clicks
	rep.Tests = base.tests
	rep.Voids = base.voids
	rep.Redirects = base.redirects
	rep.ConcurrentHit = hits
	return rep, nil
}

// runConcurrent shares one guarded signal between several goroutines that
// emit while also connecting and disconnecting their own slots.
func runConcurrent(ctx context.Context, cfg Config, log *slog.Logger) (int64, error) {
	workers := max(cfg.Workers, 1)

	var hits atomic.Int64
	tick := signal.NewGuarded[int](
		signal.WithConfig(cfg.Signal),
		signal.WithPolicy(signal.PolicyDynamic),
		signal.WithCapacity(workers+1),
		signal.WithName("tick"),
	)
	counter := signal.NewFuncSlot(func(int) { hits.Add(1) })
	if st := tick.Connect(counter); !st.OK() {
		return 0, fmt.Errorf("connect counter: %w", st.Err())
	}

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			own := signal.NewFuncSlot(func(int) {})
			if st := tick.Connect(own); !st.OK() {
				return fmt.Errorf("worker %d connect: %w", w, st.Err())
			}
			defer tick.Disconnect(own)

			for i := 0; i < cfg.Iterations; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				tick.Emit(w)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return hits.Load(), err
	}

	log.Info("concurrent emit finished",
		logger.Signal("tick"),
		logger.Count("workers", workers),
		logger.Count("hits", int(hits.Load())),
		logger.Connections(tick.Connections(), workers+1))
	return hits.Load(), nil
}

func connect[T any](log *slog.Logger, s *signal.Signal[T], slot signal.Slot[T]) signal.Status {
	st := s.Connect(slot)
	logStatus(log, s.Name(), st, s.Connections(), s.Capacity())
	return st
}

func forward[T any](log *slog.Logger, s, to *signal.Signal[T]) signal.Status {
	st := s.ConnectSignal(to)
	logStatus(log, s.Name(), st, s.Connections(), s.Capacity())
	return st
}

func logStatus(log *slog.Logger, name string, st signal.Status, n, capacity int) {
	if st.OK() {
		log.Debug("connected", logger.Signal(name), logger.Status(st), logger.Connections(n, capacity))
		return
	}
	log.Warn("connection refused",
		logger.Signal(name),
		logger.Status(st),
		logger.Connections(n, capacity),
		logger.Error(st.Err()))
}
