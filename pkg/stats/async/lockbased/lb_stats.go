package lockbased

// Lock based dataset collection with on-demand snapshots

import (
	"context"
	"slices"
	"sync"

	"github.com/hyp3rd/ewrap"
	"github.com/sirupsen/logrus"

	"github.com/shashank-93rao/descriptive"
	"github.com/shashank-93rao/descriptive/pkg/stats"
)

// Holds the recorded values and the synchronization mechanisms
type lockBasedCollector[T descriptive.Scalar] struct {
	lock     sync.RWMutex
	values   []T
	lifetime context.Context
	logger   logrus.FieldLogger
}

// Event records n into the dataset. The write happens under the write lock,
// so it is visible to every Count or Snapshot call made after Event returns.
// Once the collector's context is done Event fails with ErrCollectorClosed.
func (c *lockBasedCollector[T]) Event(ctx context.Context, n T) error {
	if err := c.usable(ctx); err != nil {
		return err
	}
	c.lock.Lock()
	defer c.lock.Unlock()

	c.values = append(c.values, n)
	c.logger.Debugf("Recorded event %v, %d values", n, len(c.values))
	return nil
}

// Count returns the number of values recorded so far.
func (c *lockBasedCollector[T]) Count(ctx context.Context) (int, error) {
	if err := c.usable(ctx); err != nil {
		return 0, err
	}
	c.lock.RLock()
	defer c.lock.RUnlock()
	return len(c.values), nil
}

// Snapshot returns immutable statistics over every value recorded so far.
// Values recorded afterwards do not change the returned snapshot.
func (c *lockBasedCollector[T]) Snapshot(ctx context.Context) (descriptive.Statistics[T], error) {
	if err := c.usable(ctx); err != nil {
		return nil, err
	}
	c.lock.RLock()
	values := slices.Clone(c.values)
	c.lock.RUnlock()

	// sorting happens outside the lock
	engine, err := stats.New(values)
	if err != nil {
		return nil, ewrap.Wrap(err, "snapshot")
	}
	return engine, nil
}

// usable reports why the collector cannot serve a call, if it cannot
func (c *lockBasedCollector[T]) usable(ctx context.Context) error {
	if c.lifetime.Err() != nil {
		return descriptive.ErrCollectorClosed
	}
	return ctx.Err()
}

// NewCollector returns a collector guarding its dataset with a read-write
// lock. Writers never wait for a snapshot longer than a slice copy. When ctx is
// done the collector releases its values and rejects further calls.
func NewCollector[T descriptive.Scalar](ctx context.Context, opts ...descriptive.CollectorOption) (descriptive.Collector[T], error) {
	cfg, err := descriptive.NewCollectorConfig(opts...)
	if err != nil {
		return nil, ewrap.Wrap(err, "lock based collector")
	}
	c := &lockBasedCollector[T]{
		values:   make([]T, 0, cfg.Capacity),
		lifetime: ctx,
		logger:   cfg.Logger,
	}
	c.logger.Info("Starting the lock based collector")
	context.AfterFunc(ctx, func() {
		c.lock.Lock()
		defer c.lock.Unlock()
		c.logger.Info("Context cancelled... Releasing collected values")
		c.values = nil
	})
	return c, nil
}
