package counter

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Config is the construction-time configuration of a Counter.
type Config struct {
	Value int
	Min   int
	Max   int
}

// Validate reports ErrInvalidBounds when Min > Max and ErrValueOutOfRange
// when Value lies outside [Min, Max].
func (c Config) Validate() error {
	if err := validateBounds(c.Min, c.Max); err != nil {
		return err
	}
	if c.Value < c.Min || c.Value > c.Max {
		return fmt.Errorf("value %d not in [%d, %d]: %w", c.Value, c.Min, c.Max, ErrValueOutOfRange)
	}
	return nil
}

func validateBounds(min, max int) error {
	if min > max {
		return fmt.Errorf("min %d > max %d: %w", min, max, ErrInvalidBounds)
	}
	return nil
}

// Flags are the boundary flags derived from the current value.
type Flags struct {
	AtMin bool
	AtMax bool
}

// Option configures a Counter at construction.
type Option func(*Counter)

// WithLogger sets the logger used for transition and observer-failure logs.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Counter) {
		if log != nil {
			c.log = log
		}
	}
}

// WithObservers subscribes observers before the counter is returned.
func WithObservers(observers ...Observer) Option {
	return func(c *Counter) {
		c.pending = append(c.pending, observers...)
	}
}

// AllowOutOfRangeStart accepts an initial value outside [min, max].
// Steps still only land on values that satisfy the step rule, so the value
// converges into range and then stays there.
func AllowOutOfRangeStart() Option {
	return func(c *Counter) {
		c.lenient = true
	}
}

// Counter is an integer clamped to the inclusive range [min, max].
// It is not safe for concurrent use; all mutations are expected to come from
// a single event loop.
type Counter struct {
	value     int
	min       int
	max       int
	lenient   bool
	log       logrus.FieldLogger
	observers *MultiObserver
	pending   []Observer
}

// New creates a Counter. Bounds are always validated; the initial value is
// validated unless AllowOutOfRangeStart is given.
func New(cfg Config, opts ...Option) (*Counter, error) {
	c := &Counter{
		value: cfg.Value,
		min:   cfg.Min,
		max:   cfg.Max,
		log:   discardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.lenient {
		if err := validateBounds(cfg.Min, cfg.Max); err != nil {
			return nil, fmt.Errorf("counter config: %w", err)
		}
	} else if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("counter config: %w", err)
	}
	c.observers = NewMultiObserver(c.log, c.pending...)
	c.pending = nil
	return c, nil
}

// Value returns the current value.
func (c *Counter) Value() int { return c.value }

// Min returns the inclusive lower bound.
func (c *Counter) Min() int { return c.min }

// Max returns the inclusive upper bound.
func (c *Counter) Max() int { return c.max }

// Flags derives the boundary flags from the current value.
func (c *Counter) Flags() Flags {
	return Flags{
		AtMin: c.value == c.min,
		AtMax: c.value == c.max,
	}
}

// Subscribe registers an observer for subsequent changes.
func (c *Counter) Subscribe(o Observer) {
	c.observers.Add(o)
}

// CanIncrement reports whether Increment would change the value.
func (c *Counter) CanIncrement() bool { return c.value+1 <= c.max }

// CanDecrement reports whether Decrement would change the value.
func (c *Counter) CanDecrement() bool { return c.value-1 >= c.min }

// Increment adds one if the result stays <= max; otherwise it is a no-op.
// Returns the resulting value.
func (c *Counter) Increment() int {
	if c.CanIncrement() {
		c.set(c.value + 1)
	}
	return c.value
}

// Decrement subtracts one if the result stays >= min; otherwise it is a no-op.
// Returns the resulting value.
func (c *Counter) Decrement() int {
	if c.CanDecrement() {
		c.set(c.value - 1)
	}
	return c.value
}

// SetBounds reconfigures the range and re-clamps the value into it.
// Observers are notified only if the value moved.
func (c *Counter) SetBounds(min, max int) error {
	if err := validateBounds(min, max); err != nil {
		return fmt.Errorf("set bounds: %w", err)
	}
	c.min, c.max = min, max
	c.log.WithFields(logrus.Fields{"min": min, "max": max}).Debug("counter bounds changed")
	switch {
	case c.value < min:
		c.set(min)
	case c.value > max:
		c.set(max)
	}
	return nil
}

func (c *Counter) set(v int) {
	prev := c.value
	if prev == v {
		return
	}
	c.value = v
	change := Change{Previous: prev, Current: v, Flags: c.Flags()}
	c.log.WithFields(logrus.Fields{
		"previous": prev,
		"value":    v,
		"at_min":   change.Flags.AtMin,
		"at_max":   change.Flags.AtMax,
	}).Debug("counter changed")
	c.observers.OnChange(change)
}
