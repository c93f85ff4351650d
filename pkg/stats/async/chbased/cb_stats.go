package chbased

// Async event push with channel based request dispatcher

import (
	"context"

	"github.com/hyp3rd/ewrap"
	"github.com/sirupsen/logrus"

	"github.com/shashank-93rao/descriptive"
	"github.com/shashank-93rao/descriptive/pkg/stats"
)

// A capped view of the dispatcher's values. The dispatcher only ever
// appends, so the elements in the view are never written again.
type answerChan[T descriptive.Scalar] chan []T

// Holds the communication channels. The values themselves are owned by the
// dispatcher goroutine.
type channelBasedCollector[T descriptive.Scalar] struct {
	eventChan chan T
	reqChan   chan answerChan[T]
	done      chan struct{}
	lifetime  context.Context
	logger    logrus.FieldLogger
}

// Event queues n for the dispatcher. This is not a blocking call unless the
// no.of writes is so huge that the dispatcher is unable to keep up with the
// event buffer. Every event queued before a Count or Snapshot call is
// included in its answer.
func (c *channelBasedCollector[T]) Event(ctx context.Context, n T) error {
	if err := c.usable(ctx); err != nil {
		return err
	}
	c.logger.Debugf("Writing event: %v", n)
	select {
	case <-c.done:
		return descriptive.ErrCollectorClosed
	case <-ctx.Done():
		return ctx.Err()
	case c.eventChan <- n:
		c.logger.Debugf("Event %v pushed", n)
		return nil
	}
}

// Count returns the number of values recorded so far.
func (c *channelBasedCollector[T]) Count(ctx context.Context) (int, error) {
	values, err := c.ask(ctx)
	if err != nil {
		return 0, err
	}
	return len(values), nil
}

// Snapshot returns immutable statistics over every value recorded so far.
// Values recorded afterwards do not change the returned snapshot.
func (c *channelBasedCollector[T]) Snapshot(ctx context.Context) (descriptive.Statistics[T], error) {
	values, err := c.ask(ctx)
	if err != nil {
		return nil, err
	}
	engine, err := stats.New(values)
	if err != nil {
		return nil, ewrap.Wrap(err, "snapshot")
	}
	return engine, nil
}

// ask sends a request to the dispatcher and waits for its answer
func (c *channelBasedCollector[T]) ask(ctx context.Context) ([]T, error) {
	if err := c.usable(ctx); err != nil {
		return nil, err
	}
	responseChan := make(answerChan[T], 1)
	select {
	case <-c.done:
		return nil, descriptive.ErrCollectorClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	case c.reqChan <- responseChan: // Send request
	}

	select {
	case values := <-responseChan: // Wait for response
		return values, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-c.done:
		// the dispatcher may have answered just before stopping
		select {
		case values := <-responseChan:
			return values, nil
		default:
			return nil, descriptive.ErrCollectorClosed
		}
	}
}

// usable reports why the collector cannot serve a call, if it cannot
func (c *channelBasedCollector[T]) usable(ctx context.Context) error {
	if c.lifetime.Err() != nil {
		return descriptive.ErrCollectorClosed
	}
	return ctx.Err()
}

// NewCollector returns a collector whose dataset is owned by a single
// dispatcher goroutine. Calling this function starts that goroutine. It is
// very important that the context passed as an argument is closed at the
// end. Failure to do so will leave the dispatcher thread dangling.
func NewCollector[T descriptive.Scalar](ctx context.Context, opts ...descriptive.CollectorOption) (descriptive.Collector[T], error) {
	cfg, err := descriptive.NewCollectorConfig(opts...)
	if err != nil {
		return nil, ewrap.Wrap(err, "channel based collector")
	}
	c := &channelBasedCollector[T]{
		eventChan: make(chan T, cfg.Buffer),
		reqChan:   make(chan answerChan[T], cfg.Buffer),
		done:      make(chan struct{}),
		lifetime:  ctx,
		logger:    cfg.Logger,
	}
	go runDispatcherThread(ctx, c, cfg.Capacity)
	return c, nil
}

// Starts the dispatcher thread
func runDispatcherThread[T descriptive.Scalar](ctx context.Context, c *channelBasedCollector[T], capacity int) {
	c.logger.Info("Starting the dispatcher thread")
	defer close(c.done)

	values := make([]T, 0, capacity)
	for {
		select {
		case <-ctx.Done(): // If caller chain cancelled
			c.logger.Info("Context cancelled... Stopping dispatcher thread")
			return
		case event := <-c.eventChan: // if there are any events
			values = append(values, event)
		case respChan := <-c.reqChan:
			values = drain(c.eventChan, values)
			respChan <- values[:len(values):len(values)]
		}
	}
}

// drain appends every event already queued so that a request observes all
// writes that completed before it was sent
func drain[T descriptive.Scalar](events <-chan T, values []T) []T {
	for {
		select {
		case event := <-events:
			values = append(values, event)
		default:
			return values
		}
	}
}
