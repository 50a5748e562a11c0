package signal

import "sync"

// Guarded serializes access to a Signal for callers that share it across
// goroutines. Connect and disconnect take an exclusive lock; Emit takes a
// shared lock, so emits may run in parallel with each other.
//
// Only the wrapped signal's registries are protected. Forwarded signals
// that are mutated elsewhere need their own guard, and a slot that connects
// to or disconnects from the same Guarded during Emit deadlocks.
type Guarded[T any] struct {
	mu  sync.RWMutex
	sig *Signal[T]
}

// Guard wraps an existing signal.
func Guard[T any](s *Signal[T]) *Guarded[T] {
	return &Guarded[T]{sig: s}
}

// NewGuarded creates a signal and wraps it.
func NewGuarded[T any](opts ...Option) *Guarded[T] {
	return Guard(New[T](opts...))
}

// Unguarded returns the wrapped signal, for use as a forwarding target.
func (g *Guarded[T]) Unguarded() *Signal[T] {
	return g.sig
}

func (g *Guarded[T]) Connect(slot Slot[T]) Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.sig.Connect(slot)
}

func (g *Guarded[T]) ConnectSignal(other *Signal[T]) Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.sig.ConnectSignal(other)
}

func (g *Guarded[T]) Disconnect(slot Slot[T]) Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.sig.Disconnect(slot)
}

func (g *Guarded[T]) DisconnectMatching(slot Slot[T]) Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.sig.DisconnectMatching(slot)
}

func (g *Guarded[T]) DisconnectSignal(other *Signal[T]) Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.sig.DisconnectSignal(other)
}

func (g *Guarded[T]) Emit(v T) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	g.sig.Emit(v)
}

func (g *Guarded[T]) Connections() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.sig.Connections()
}

func (g *Guarded[T]) Topology() Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.sig.Topology()
}
