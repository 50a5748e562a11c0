package signal

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Node describes one signal in a topology snapshot.
// A signal reached a second time (shared or cyclic wiring) is reported as a
// reference carrying only its ID.
type Node struct {
	ID          string     `yaml:"id" json:"id"`
	Name        string     `yaml:"name,omitempty" json:"name,omitempty"`
	Ref         bool       `yaml:"ref,omitempty" json:"ref,omitempty"`
	Policy      string     `yaml:"policy,omitempty" json:"policy,omitempty"`
	Capacity    int        `yaml:"capacity,omitempty" json:"capacity,omitempty"`
	Connections int        `yaml:"connections,omitempty" json:"connections,omitempty"`
	Slots       []SlotInfo `yaml:"slots,omitempty" json:"slots,omitempty"`
	Forwards    []Node     `yaml:"forwards,omitempty" json:"forwards,omitempty"`
}

// SlotInfo describes a connected slot.
type SlotInfo struct {
	Kind   string `yaml:"kind" json:"kind"`
	Target string `yaml:"target" json:"target"`
}

// Topology snapshots the graph reachable from s. It is a diagnostic view;
// nothing reads it back.
func (s *Signal[T]) Topology() Node {
	return s.describe(make(map[*Signal[T]]struct{}))
}

func (s *Signal[T]) describe(seen map[*Signal[T]]struct{}) Node {
	if _, ok := seen[s]; ok {
		return Node{ID: s.id, Name: s.name, Ref: true}
	}
	seen[s] = struct{}{}

	n := Node{
		ID:          s.id,
		Name:        s.name,
		Policy:      s.policy.String(),
		Capacity:    s.capacity,
		Connections: s.Connections(),
	}
	for slot := range s.slots.All() {
		n.Slots = append(n.Slots, SlotInfo{
			Kind:   slot.Kind().String(),
			Target: slotLabel(slot),
		})
	}
	for next := range s.forwards.All() {
		n.Forwards = append(n.Forwards, next.describe(seen))
	}
	return n
}

// YAML encodes the snapshot.
func (n Node) YAML() ([]byte, error) {
	out, err := yaml.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("failed to encode topology: %w", err)
	}
	return out, nil
}

func slotLabel(slot any) string {
	if s, ok := slot.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", slot)
}
