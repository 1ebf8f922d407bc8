package ohash

import (
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

const (
	// DefaultSize is the initial number of slots.
	DefaultSize = 7
	// DefaultMaxLoadFactor is the load factor above which the table grows.
	DefaultMaxLoadFactor = 0.5
)

// Config holds the construction-time settings of a Table. It can be decoded
// from a TOML table.
type Config struct {
	// Size is the initial slot count. It should be prime; only growth
	// rounds to a prime.
	Size int `toml:"size"`

	// MaxLoadFactor bounds Len()/Cap() after every insert, in (0, 1].
	MaxLoadFactor float64 `toml:"max_load_factor"`
}

// DefaultConfig returns the settings used when no option overrides them.
func DefaultConfig() Config {
	return Config{Size: DefaultSize, MaxLoadFactor: DefaultMaxLoadFactor}
}

type options[V any] struct {
	cfg   Config
	log   *zap.Logger
	equal func(a, b V) bool
}

// Option configures a Table at construction time.
type Option[V any] func(*options[V])

// WithSize sets the initial slot count.
func WithSize[V any](size int) Option[V] {
	return func(o *options[V]) {
		o.cfg.Size = size
	}
}

// WithMaxLoadFactor sets the load factor that triggers growth.
func WithMaxLoadFactor[V any](f float64) Option[V] {
	return func(o *options[V]) {
		o.cfg.MaxLoadFactor = f
	}
}

// WithConfig applies every non-zero field of cfg.
func WithConfig[V any](cfg Config) Option[V] {
	return func(o *options[V]) {
		if cfg.Size != 0 {
			o.cfg.Size = cfg.Size
		}
		if cfg.MaxLoadFactor != 0 {
			o.cfg.MaxLoadFactor = cfg.MaxLoadFactor
		}
	}
}

// WithLogger sets the logger used to report growth. Nil disables logging.
func WithLogger[V any](l *zap.Logger) Option[V] {
	return func(o *options[V]) {
		o.log = l
	}
}

// WithValueEqual sets the comparison deciding between overwrite and count
// increment when an insert hits an existing key. The default is cmp.Equal,
// which panics on structs with unexported fields; supply a function for
// such values.
func WithValueEqual[V any](eq func(a, b V) bool) Option[V] {
	return func(o *options[V]) {
		o.equal = eq
	}
}

func newOptions[V any](opts []Option[V]) options[V] {
	o := options[V]{cfg: DefaultConfig()}
	for _, fn := range opts {
		fn(&o)
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}
	if o.equal == nil {
		o.equal = func(a, b V) bool { return cmp.Equal(a, b) }
	}
	return o
}
