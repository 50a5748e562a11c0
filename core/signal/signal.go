package signal

import (
	"iter"

	"github.com/google/uuid"
)

// Signal is a typed event channel. It fans out to connected slots and
// forwards to connected signals, synchronously and in connection order.
//
// A Signal is not safe for concurrent use; wrap it with Guard when several
// goroutines connect, disconnect or emit.
type Signal[T any] struct {
	id          string
	name        string
	capacity    int
	policy      Policy
	allowCycles bool
	maxDepth    int

	slots    Store[Slot[T]]
	forwards Store[*Signal[T]]
}

// New creates a signal for payloads of type T.
//
// Example:
//
//	click := signal.New[int](signal.WithCapacity(2), signal.WithName("click"))
//	click.Connect(signal.NewFuncSlot(func(x int) { fmt.Println(x) }))
//	click.Emit(42)
func New[T any](opts ...Option) *Signal[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Signal[T]{
		id:          uuid.NewString(),
		name:        o.name,
		capacity:    o.capacity,
		policy:      o.policy,
		allowCycles: o.allowCycles,
		maxDepth:    o.maxDepth,
		slots:       NewStore[Slot[T]](o.policy, o.capacity),
		forwards:    NewStore[*Signal[T]](o.policy, o.capacity),
	}
}

// Connect appends slot to the receivers. The same slot may be connected
// more than once and then fires once per connection.
func (s *Signal[T]) Connect(slot Slot[T]) Status {
	if slot == nil {
		return StatusNil
	}
	if s.Connections() >= s.capacity {
		return StatusAtCapacity
	}
	if !s.slots.Append(slot) {
		return StatusAtCapacity
	}
	return StatusConnected
}

// ConnectSignal makes s forward every emitted value to other.
// Unless the signal was built with AllowCycles, a connection that would let
// other reach s again is rejected with StatusCycle.
func (s *Signal[T]) ConnectSignal(other *Signal[T]) Status {
	if other == nil {
		return StatusNil
	}
	if !s.allowCycles && other.reaches(s) {
		return StatusCycle
	}
	if s.Connections() >= s.capacity {
		return StatusAtCapacity
	}
	if !s.forwards.Append(other) {
		return StatusAtCapacity
	}
	return StatusConnected
}

// Disconnect removes the first connection of this exact slot reference.
func (s *Signal[T]) Disconnect(slot Slot[T]) Status {
	if slot == nil {
		return StatusNil
	}
	if !s.slots.Remove(slot) {
		return StatusNotFound
	}
	return StatusDisconnected
}

// DisconnectMatching removes the first connected slot whose target equals
// slot's target, so a caller can disconnect by function or method identity
// without holding the originally connected endpoint.
func (s *Signal[T]) DisconnectMatching(slot Slot[T]) Status {
	if slot == nil {
		return StatusNil
	}
	for connected := range s.slots.All() {
		if connected.Equal(slot) {
			s.slots.Remove(connected)
			return StatusDisconnected
		}
	}
	return StatusNotFound
}

// DisconnectSignal stops forwarding to other.
func (s *Signal[T]) DisconnectSignal(other *Signal[T]) Status {
	if other == nil {
		return StatusNil
	}
	if !s.forwards.Remove(other) {
		return StatusNotFound
	}
	return StatusDisconnected
}

// Emit invokes every connected slot with v, then emits v on every forwarded
// signal, depth first. Emitting on a nil signal does nothing.
//
// A panicking slot aborts the whole dispatch. Connecting or disconnecting
// from inside a slot is memory-safe, but the dispatch in progress may then
// skip or repeat entries.
func (s *Signal[T]) Emit(v T) {
	if s == nil {
		return
	}
	s.dispatch(v, 0, s.maxDepth)
}

// dispatch walks the stores by index. Lengths are re-read every step, so a
// slot that disconnects itself shifts the rest instead of reading past the end.
func (s *Signal[T]) dispatch(v T, depth, limit int) {
	for i := 0; i < s.slots.Len(); i++ {
		s.slots.At(i).Invoke(v)
	}
	if s.forwards.Len() == 0 {
		return
	}
	if depth >= limit {
		panic(&DepthError{Signal: s.id, Limit: limit})
	}
	for i := 0; i < s.forwards.Len(); i++ {
		s.forwards.At(i).dispatch(v, depth+1, limit)
	}
}

// reaches reports whether target is s or is reachable from s through
// forwarding connections.
func (s *Signal[T]) reaches(target *Signal[T]) bool {
	visited := make(map[*Signal[T]]struct{})
	stack := []*Signal[T]{s}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == target {
			return true
		}
		if _, seen := visited[cur]; seen {
			continue
		}
		visited[cur] = struct{}{}
		for next := range cur.forwards.All() {
			stack = append(stack, next)
		}
	}
	return false
}

// Connections returns the number of connected slots and signals combined.
func (s *Signal[T]) Connections() int {
	return s.slots.Len() + s.forwards.Len()
}

// Capacity returns the combined connection budget.
func (s *Signal[T]) Capacity() int {
	return s.capacity
}

// Policy returns the storage policy the signal was built with.
func (s *Signal[T]) Policy() Policy {
	return s.policy
}

// ID returns the signal's unique identifier.
func (s *Signal[T]) ID() string {
	return s.id
}

// Name returns the name set with WithName, or "".
func (s *Signal[T]) Name() string {
	return s.name
}

// Slots iterates connected slots in connection order.
func (s *Signal[T]) Slots() iter.Seq[Slot[T]] {
	return s.slots.All()
}

// Forwards iterates forwarded signals in connection order.
func (s *Signal[T]) Forwards() iter.Seq[*Signal[T]] {
	return s.forwards.All()
}

// Notify emits on a zero-argument signal.
func Notify(s *Signal[Void]) {
	s.Emit(Void{})
}

// Emit2 emits a two-value payload.
//
// Example:
//
//	test := signal.New[signal.Pair[int, float32]]()
//	test.Connect(signal.NewFunc2Slot(func(i int, f float32) { fmt.Println(i, f) }))
//	signal.Emit2(test, 24, 3.14)
func Emit2[A, B any](s *Signal[Pair[A, B]], a A, b B) {
	s.Emit(Pair[A, B]{First: a, Second: b})
}
