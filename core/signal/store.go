package signal

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Policy selects the storage strategy behind a signal's registry.
type Policy uint8

const (
	// PolicyFixed allocates exactly the signal capacity on first use and
	// never allocates again. Meant for memory-constrained targets.
	PolicyFixed Policy = iota
	// PolicyDynamic grows the underlying slice on demand.
	PolicyDynamic
)

func (p Policy) String() string {
	switch p {
	case PolicyFixed:
		return "fixed"
	case PolicyDynamic:
		return "dynamic"
	default:
		return "unknown"
	}
}

// UnmarshalText parses "fixed" or "dynamic" (case-insensitive).
// Lets Policy be loaded straight from environment variables.
func (p *Policy) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "fixed", "embedded":
		*p = PolicyFixed
	case "dynamic", "standard":
		*p = PolicyDynamic
	default:
		return fmt.Errorf("unknown storage policy %q", text)
	}
	return nil
}

func (p Policy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Store is an ordered collection of non-owning references.
// Both policies behave identically for every operation below as long as
// the caller never appends past the capacity the store was built with.
type Store[E comparable] interface {
	// Append adds e at the end. Returns false when the store is full.
	Append(e E) bool

	// Remove deletes the first entry identical to e and closes the gap.
	// Returns false when e is absent.
	Remove(e E) bool

	// All iterates entries in insertion order.
	All() iter.Seq[E]

	// At returns the entry at index i, 0 <= i < Len().
	At(i int) E

	// Len returns the number of entries.
	Len() int
}

// NewStore returns a store for the given policy. Capacity bounds the fixed
// policy only; the dynamic policy relies on the caller's budget.
func NewStore[E comparable](policy Policy, capacity int) Store[E] {
	if policy == PolicyDynamic {
		return &dynamicStore[E]{}
	}
	return &fixedStore[E]{capacity: capacity}
}

type fixedStore[E comparable] struct {
	capacity int
	items    []E
}

func (s *fixedStore[E]) Append(e E) bool {
	if s.items == nil {
		if s.capacity <= 0 {
			return false
		}
		s.items = make([]E, 0, s.capacity)
	}
	if len(s.items) == cap(s.items) {
		return false
	}
	s.items = append(s.items, e)
	return true
}

func (s *fixedStore[E]) Remove(e E) bool {
	for i, item := range s.items {
		if item != e {
			continue
		}
		n := len(s.items)
		copy(s.items[i:], s.items[i+1:])
		var zero E
		s.items[n-1] = zero
		s.items = s.items[:n-1]
		return true
	}
	return false
}

func (s *fixedStore[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := 0; i < len(s.items); i++ {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}

func (s *fixedStore[E]) At(i int) E {
	return s.items[i]
}

func (s *fixedStore[E]) Len() int {
	return len(s.items)
}

type dynamicStore[E comparable] struct {
	items []E
}

func (s *dynamicStore[E]) Append(e E) bool {
	s.items = append(s.items, e)
	return true
}

func (s *dynamicStore[E]) Remove(e E) bool {
	i := slices.Index(s.items, e)
	if i < 0 {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

func (s *dynamicStore[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := 0; i < len(s.items); i++ {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}

func (s *dynamicStore[E]) At(i int) E {
	return s.items[i]
}

func (s *dynamicStore[E]) Len() int {
	return len(s.items)
}
