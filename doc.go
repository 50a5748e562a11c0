// Package signalkit is an in-process signal/slot toolkit: typed event channels
// that deliver synchronously to function and method receivers and chain into
// each other, with a fixed connection budget per channel.
//
// # Package Organization
//
// The module is organized into core packages, supporting utilities and a
// runnable demo:
//
//   - Core: the signal engine and the ambient logging and configuration it uses
//   - Utilities: optional instrumentation around slots
//   - Commands: an end-to-end demonstration program
//
// Use go doc for the full API of any package:
//
//	go doc github.com/dmitrymomot/signalkit/core/signal
//	go doc -all github.com/dmitrymomot/signalkit/pkg/slotmetrics
//
// # Core Packages
//
//	github.com/dmitrymomot/signalkit/core/signal  - Signals, slots, storage policies, middleware and topology snapshots
//	github.com/dmitrymomot/signalkit/core/config  - Type-safe environment variable loading with .env support
//	github.com/dmitrymomot/signalkit/core/logger  - slog construction and attribute helpers
//
// # Utility Packages
//
//	github.com/dmitrymomot/signalkit/pkg/slotmetrics - Prometheus counters and latency histograms for slots
//
// # Commands
//
//	github.com/dmitrymomot/signalkit/cmd/demo - Wires emitters to receivers and prints the resulting topology
//
// # Architecture Patterns
//
//   - Generics for payload type safety
//   - Functional options for construction
//   - Status values and sentinel errors instead of panics on connect and disconnect
//   - Opt-in locking through a wrapper type; the core is single-threaded
//
// # Example Usage
//
//	import (
//		"fmt"
//
//		"github.com/dmitrymomot/signalkit/core/signal"
//	)
//
//	type Counter struct{ total int }
//
//	func (c *Counter) OnClick(x int) { c.total += x }
//
//	func main() {
//		click := signal.New[int](signal.WithCapacity(2), signal.WithName("click"))
//		audit := signal.New[int]()
//
//		c := &Counter{}
//		click.Connect(signal.NewMethodSlot(c, (*Counter).OnClick))
//		click.ConnectSignal(audit)
//		audit.Connect(signal.NewFuncSlot(func(x int) { fmt.Println("audit", x) }))
//
//		click.Emit(42)
//	}
package signalkit
