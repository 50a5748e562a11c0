package signal

// Status reports the outcome of a connect or disconnect call.
// Rejections are reported as values; the registry is left untouched.
type Status uint8

const (
	// StatusConnected means the target was appended to the signal.
	StatusConnected Status = iota
	// StatusDisconnected means the target was removed from the signal.
	StatusDisconnected
	// StatusAtCapacity means the signal had no room left; nothing changed.
	StatusAtCapacity
	// StatusNotFound means the target was not connected; nothing changed.
	StatusNotFound
	// StatusCycle means the forwarding connection would close a cycle; nothing changed.
	StatusCycle
	// StatusNil means the target was nil; nothing changed.
	StatusNil
)

// OK reports whether the call changed the connection set.
func (s Status) OK() bool {
	return s == StatusConnected || s == StatusDisconnected
}

// Err maps the status to its sentinel error, or nil on success.
func (s Status) Err() error {
	switch s {
	case StatusAtCapacity:
		return ErrAtCapacity
	case StatusNotFound:
		return ErrNotFound
	case StatusCycle:
		return ErrCycle
	case StatusNil:
		return ErrNilTarget
	default:
		return nil
	}
}

func (s Status) String() string {
	switch s {
	case StatusConnected:
		return "connected"
	case StatusDisconnected:
		return "disconnected"
	case StatusAtCapacity:
		return "at_capacity"
	case StatusNotFound:
		return "not_found"
	case StatusCycle:
		return "cycle"
	case StatusNil:
		return "nil_target"
	default:
		return "unknown"
	}
}
