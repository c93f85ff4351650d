package descriptive

import (
	"github.com/hyp3rd/ewrap"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultCapacity is the initial number of values a collector reserves room for.
	DefaultCapacity = 64
	// DefaultBuffer is the size of a channel based collector's event queue.
	DefaultBuffer = 100
)

// CollectorConfig holds the settings shared by collector implementations.
type CollectorConfig struct {
	Capacity int
	Buffer   int
	Logger   logrus.FieldLogger
}

// CollectorOption configures a collector at construction.
type CollectorOption func(c *CollectorConfig) error

// NewCollectorConfig applies opts over the defaults.
func NewCollectorConfig(opts ...CollectorOption) (CollectorConfig, error) {
	c := CollectorConfig{
		Capacity: DefaultCapacity,
		Buffer:   DefaultBuffer,
		Logger:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return CollectorConfig{}, err
		}
	}
	return c, nil
}

// WithCapacity sets the initial capacity of the collected dataset.
func WithCapacity(n int) CollectorOption {
	return func(c *CollectorConfig) error {
		if n < 0 {
			return ewrap.Wrapf(ErrInvalidInput, "capacity cannot be negative: %d", n)
		}
		c.Capacity = n
		return nil
	}
}

// WithBuffer sets the event queue size of a channel based collector. Lock
// based collectors ignore it.
func WithBuffer(n int) CollectorOption {
	return func(c *CollectorConfig) error {
		if n < 0 {
			return ewrap.Wrapf(ErrInvalidInput, "buffer cannot be negative: %d", n)
		}
		c.Buffer = n
		return nil
	}
}

// WithLogger sets the logger used for collector lifecycle and event messages.
func WithLogger(l logrus.FieldLogger) CollectorOption {
	return func(c *CollectorConfig) error {
		if l == nil {
			return ewrap.Wrap(ErrInvalidInput, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}
