// Package stats computes descriptive statistics over a fixed dataset.
//
// An Engine sorts its own copy of the values once, at construction, and never
// mutates it afterwards. Every query recomputes from that sorted copy, so an
// Engine can be shared between goroutines without locking.
package stats

import (
	"slices"

	"github.com/hyp3rd/ewrap"

	"github.com/shashank-93rao/descriptive"
)

var _ descriptive.Statistics[float64] = (*Engine[float64])(nil)

// Engine holds an immutable, ascending-sorted dataset.
type Engine[T descriptive.Scalar] struct {
	values []T
	count  int
}

// New returns an Engine over a sorted copy of values. The caller keeps
// ownership of values; later changes to it do not affect the Engine.
func New[T descriptive.Scalar](values []T) (*Engine[T], error) {
	if len(values) == 0 {
		return nil, ewrap.Wrap(descriptive.ErrInvalidInput, "dataset must contain at least one value")
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return &Engine[T]{
		values: sorted,
		count:  len(sorted),
	}, nil
}

// Count returns the number of values in the dataset.
func (e *Engine[T]) Count() int {
	return e.count
}

// Values returns a copy of the dataset in ascending order.
func (e *Engine[T]) Values() []T {
	return slices.Clone(e.values)
}

// n is the dataset size as a float64, used by every formula.
func (e *Engine[T]) n() float64 {
	return float64(e.count)
}
