package signal

import "math"

const (
	// DefaultCapacity is the connection budget of a signal built without WithCapacity.
	DefaultCapacity = 3

	// MaxCapacity is the largest accepted capacity.
	MaxCapacity = math.MaxUint16

	// DefaultMaxDepth bounds nested forwarding during a single Emit.
	DefaultMaxDepth = 1024
)

// Option configures a Signal at construction time.
type Option func(*options)

type options struct {
	name        string
	capacity    int
	policy      Policy
	allowCycles bool
	maxDepth    int
}

func defaultOptions() options {
	return options{
		capacity: DefaultCapacity,
		policy:   PolicyFixed,
		maxDepth: DefaultMaxDepth,
	}
}

// WithCapacity sets the combined number of slots and forwarded signals the
// signal accepts. Values above MaxCapacity are clamped; values below 1 are ignored.
//
// Example:
//
//	click := signal.New[int](signal.WithCapacity(2))
func WithCapacity(n int) Option {
	return func(o *options) {
		if n <= 0 {
			return
		}
		o.capacity = min(n, MaxCapacity)
	}
}

// WithPolicy selects the registry storage strategy.
func WithPolicy(p Policy) Option {
	return func(o *options) {
		if p == PolicyFixed || p == PolicyDynamic {
			o.policy = p
		}
	}
}

// WithName attaches a human-readable name shown in topology snapshots.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// AllowCycles disables connect-time cycle rejection. Emitting into a cyclic
// graph then recurses until the max depth is hit and panics with a *DepthError.
func AllowCycles() Option {
	return func(o *options) {
		o.allowCycles = true
	}
}

// WithMaxDepth bounds nested forwarding for every Emit started on this signal.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}

// Config is the environment-loadable form of the construction options.
// Load it with core/config and pass it through WithConfig.
type Config struct {
	DefaultCapacity int    `env:"SIGNAL_DEFAULT_CAPACITY" envDefault:"3"`
	Policy          Policy `env:"SIGNAL_POLICY" envDefault:"fixed"`
	AllowCycles     bool   `env:"SIGNAL_ALLOW_CYCLES" envDefault:"false"`
	MaxDepth        int    `env:"SIGNAL_MAX_DEPTH" envDefault:"1024"`
}

// WithConfig applies every field of cfg. Later options still override it.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		WithCapacity(cfg.DefaultCapacity)(o)
		WithPolicy(cfg.Policy)(o)
		WithMaxDepth(cfg.MaxDepth)(o)
		if cfg.AllowCycles {
			o.allowCycles = true
		}
	}
}
