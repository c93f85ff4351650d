package stats

import (
	"github.com/hyp3rd/ewrap"

	"github.com/shashank-93rao/descriptive"
)

// Mean returns the arithmetic mean of the dataset.
func (e *Engine[T]) Mean() float64 {
	sum := 0.0
	for _, v := range e.values {
		sum += float64(v)
	}
	return sum / e.n()
}

// Median returns the middle value of the dataset. For an even number of
// values it returns the average of the two centermost values.
func (e *Engine[T]) Median() float64 {
	mid := e.count / 2
	if e.count%2 != 0 {
		return float64(e.values[mid])
	}
	return (float64(e.values[mid-1]) + float64(e.values[mid])) / 2
}

// Mode returns the most frequent value. When several values share the
// highest frequency the smallest of them is returned.
func (e *Engine[T]) Mode() T {
	mode := e.values[0]
	best := 0
	for i := 0; i < e.count; {
		j := i + 1
		for j < e.count && e.values[j] == e.values[i] {
			j++
		}
		// strict comparison keeps the earliest, i.e. smallest, run on ties
		if run := j - i; run > best {
			best = run
			mode = e.values[i]
		}
		i = j
	}
	return mode
}

// StandardizedScore returns the number of population standard deviations v
// lies from the mean.
func (e *Engine[T]) StandardizedScore(v T) (float64, error) {
	sd := e.PopulationStdDev()
	if sd == 0 {
		return 0, ewrap.Wrap(descriptive.ErrUndefinedResult, "standardized score needs a non-zero standard deviation")
	}
	return (float64(v) - e.Mean()) / sd, nil
}
