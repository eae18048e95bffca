package stress

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/hupe1980/atomicbits"
)

const (
	// maxBits bounds Words*BitLen so positions fit a roaring bitmap (uint32).
	maxBits = 1 << 30

	defaultIterations = 10_000
)

var (
	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("stress: invalid config")

	// ErrMismatch is returned when an operation or the final state disagrees
	// with the reference model.
	ErrMismatch = errors.New("stress: result mismatch")
)

// Config holds the parameters of a stress run.
type Config struct {
	// Workers is the number of concurrent goroutines per word kind.
	// If 0, defaults to GOMAXPROCS.
	Workers int

	// Iterations is the number of bit operations each worker performs.
	// If 0, defaults to 10_000.
	Iterations int

	// Seed makes runs reproducible.
	Seed uint64

	// Words is the number of shared words per word kind.
	// If 0, defaults to 1.
	Words int

	// Widths selects the word widths to exercise.
	// If empty, defaults to atomicbits.Widths().
	Widths []atomicbits.Width

	// Ordering is passed to every bit operation.
	Ordering atomicbits.Ordering

	// Logger receives progress and results. If nil, logging is disabled.
	Logger *atomicbits.Logger
}

// Option configures a stress run.
type Option func(*Config)

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		Workers:    runtime.GOMAXPROCS(0),
		Iterations: defaultIterations,
		Seed:       1,
		Words:      1,
		Ordering:   atomicbits.SeqCst,
	}
}

// NewConfig returns DefaultConfig with opts applied in order.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithWorkers sets the number of workers per word kind.
func WithWorkers(n int) Option {
	return func(c *Config) {
		c.Workers = n
	}
}

// WithIterations sets the number of operations per worker.
func WithIterations(n int) Option {
	return func(c *Config) {
		c.Iterations = n
	}
}

// WithSeed sets the random seed.
func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.Seed = seed
	}
}

// WithWords sets the number of shared words per word kind.
func WithWords(n int) Option {
	return func(c *Config) {
		c.Words = n
	}
}

// WithWidths restricts the run to the given widths.
func WithWidths(ws ...atomicbits.Width) Option {
	return func(c *Config) {
		c.Widths = ws
	}
}

// WithOrdering sets the ordering passed to every operation.
func WithOrdering(o atomicbits.Ordering) Option {
	return func(c *Config) {
		c.Ordering = o
	}
}

// WithLogger sets the logger.
func WithLogger(l *atomicbits.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

// FromEnv applies ATOMICBITS_WORKERS, ATOMICBITS_ITERATIONS and
// ATOMICBITS_SEED when they are set. Unparsable values are ignored.
func FromEnv() Option {
	return func(c *Config) {
		if n, ok := envInt("ATOMICBITS_WORKERS"); ok {
			c.Workers = n
		}
		if n, ok := envInt("ATOMICBITS_ITERATIONS"); ok {
			c.Iterations = n
		}
		if v := os.Getenv("ATOMICBITS_SEED"); v != "" {
			if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
				c.Seed = seed
			}
		}
	}
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// normalize fills defaults and validates c.
func (c *Config) normalize() error {
	if c.Workers == 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.Iterations == 0 {
		c.Iterations = defaultIterations
	}
	if c.Words == 0 {
		c.Words = 1
	}
	if len(c.Widths) == 0 {
		c.Widths = atomicbits.Widths()
	}
	if c.Logger == nil {
		c.Logger = atomicbits.NoopLogger()
	}

	switch {
	case c.Workers < 0:
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	case c.Iterations < 0:
		return fmt.Errorf("%w: iterations must not be negative, got %d", ErrInvalidConfig, c.Iterations)
	case c.Words < 0 || c.Words > maxBits/64:
		return fmt.Errorf("%w: words must be in [1, %d], got %d", ErrInvalidConfig, maxBits/64, c.Words)
	}
	for _, w := range c.Widths {
		if !atomicbits.HasWidth(w) {
			return fmt.Errorf("stress: width %s: %w", w, atomicbits.ErrWidthUnavailable)
		}
	}
	return nil
}
