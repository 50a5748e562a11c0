package slotmetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/signalkit/core/signal"
)

// Metrics holds the collectors shared by every instrumented slot.
type Metrics struct {
	invocations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// Option configures New.
type Option func(*settings)

type settings struct {
	namespace string
	buckets   []float64
}

// WithNamespace prefixes metric names.
func WithNamespace(ns string) Option {
	return func(s *settings) {
		s.namespace = ns
	}
}

// WithBuckets overrides the invocation latency histogram buckets (seconds).
func WithBuckets(buckets ...float64) Option {
	return func(s *settings) {
		if len(buckets) > 0 {
			s.buckets = buckets
		}
	}
}

// New creates the collectors and registers them with reg.
// Pass prometheus.DefaultRegisterer to expose them on the default handler.
func New(reg prometheus.Registerer, opts ...Option) (*Metrics, error) {
	s := &settings{
		buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05},
	}
	for _, opt := range opts {
		opt(s)
	}

	m := &Metrics{
		invocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: s.namespace,
			Subsystem: "signal",
			Name:      "slot_invocations_total",
			Help:      "Number of slot invocations per signal.",
		}, []string{"signal", "slot"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: s.namespace,
			Subsystem: "signal",
			Name:      "slot_duration_seconds",
			Help:      "Slot invocation latency per signal.",
			Buckets:   s.buckets,
		}, []string{"signal", "slot"}),
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{m.invocations, m.duration} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// Collectors returns the underlying collectors, e.g. for a custom registry.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.invocations, m.duration}
}

// Middleware counts and times every invocation of the wrapped slot.
// The slot label is the slot's target name as shown in topology snapshots.
//
// Example:
//
//	m, _ := slotmetrics.New(prometheus.DefaultRegisterer)
//	click.Connect(signal.Wrap(onClick, slotmetrics.Middleware[int](m, "click")))
func Middleware[T any](m *Metrics, signalName string) signal.Middleware[T] {
	return func(next signal.Slot[T]) signal.Slot[T] {
		if m == nil {
			return next
		}
		label := slotName(next)
		counter := m.invocations.WithLabelValues(signalName, label)
		observer := m.duration.WithLabelValues(signalName, label)

		return signal.WrapFunc(next, func(v T, next signal.Slot[T]) {
			start := time.Now()
			next.Invoke(v)
			observer.Observe(time.Since(start).Seconds())
			counter.Inc()
		})
	}
}

func slotName(slot any) string {
	if s, ok := slot.(interface{ String() string }); ok {
		return s.String()
	}
	return "unknown"
}
