// Package signal provides a generic, type-safe signal/slot engine: typed
// event channels that fan out synchronously to receivers and to other
// channels, with explicit capacity limits and no allocation on the emit path.
//
// # Core Components
//
// Signal[T] is the publisher. It holds up to Capacity connections, shared
// between receivers and forwarded signals, and dispatches every Emit
// depth first: all connected slots in connection order, then every forwarded
// signal in connection order.
//
// Slot[T] is the receiver endpoint. FuncSlot wraps a free function,
// MethodSlot binds an object to a method expression, NotifySlot and
// Func2Slot cover zero- and two-argument signals (Signal[Void] and
// Signal[Pair[A, B]]). An unbound slot ignores invocations.
//
// Store[E] is the registry storage policy. PolicyFixed allocates exactly the
// capacity once and never grows; PolicyDynamic grows on demand. The choice
// is made at construction and is never visible to callers.
//
// # Basic Usage
//
//	type Button struct {
//		Click *signal.Signal[int]
//	}
//
//	type Counter struct{ total int }
//
//	func (c *Counter) OnClick(x int) { c.total += x }
//
//	btn := Button{Click: signal.New[int](signal.WithCapacity(2))}
//	counter := &Counter{}
//
//	onClick := signal.NewMethodSlot(counter, (*Counter).OnClick)
//	if st := btn.Click.Connect(onClick); !st.OK() {
//		return st.Err()
//	}
//
//	btn.Click.Emit(42)
//
// # Chaining
//
// A signal can forward to another signal of the same payload type:
//
//	redirect := signal.New[bool]()
//	relay := signal.New[bool]()
//	redirect.ConnectSignal(relay)
//	relay.Connect(signal.NewFuncSlot(func(ok bool) { fmt.Println(ok) }))
//	redirect.Emit(true) // prints "true" once
//
// A connection that would close a cycle is rejected with StatusCycle. Build
// the signal with AllowCycles to accept such wiring; emitting into a cycle
// then panics with a *DepthError once WithMaxDepth nesting is reached.
//
// # Error Handling
//
// Connect and disconnect never fail loudly. They return a Status; use
// Status.OK to test for success and Status.Err to obtain ErrAtCapacity,
// ErrNotFound, ErrCycle or ErrNilTarget. A panicking slot aborts the emit.
//
// # Concurrency
//
// Signal is not safe for concurrent use. Guarded is the opt-in wrapper for
// sharing a signal between goroutines.
//
// # Configuration
//
// Config mirrors the construction options and loads from the environment:
//
//	var cfg signal.Config
//	config.MustLoad(&cfg)
//	click := signal.New[int](signal.WithConfig(cfg))
//
// # Observability
//
// The engine itself never logs. Wrap slots with LoggingMiddleware, or with
// slotmetrics.Middleware for Prometheus counters, and inspect wiring with
// Topology.
package signal
