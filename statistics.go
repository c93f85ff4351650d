package descriptive

import "context"

// Scalar is the set of numeric types a dataset can hold. Every member is
// ordered, supports addition, subtraction and division by a constant, and
// converts to float64.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Statistics describes a fixed dataset. Implementations are immutable and
// safe for concurrent use.
type Statistics[T Scalar] interface {
	Count() int

	Mean() float64

	Median() float64

	Mode() T

	StandardizedScore(v T) (float64, error)

	Max() T

	Min() T

	Range() T

	FirstQuartile() T

	ThirdQuartile() T

	InterquartileRange() T

	PopulationVariance() float64

	PopulationStdDev() float64

	PopulationSkewness() (float64, error)

	PopulationKurtosis() (float64, error)

	SampleVariance() (float64, error)

	SampleStdDev() (float64, error)

	SampleSkewness() (float64, error)

	SampleKurtosis() (float64, error)
}

// Collector accumulates values from concurrent writers and hands out
// immutable Statistics snapshots of everything recorded so far.
type Collector[T Scalar] interface {
	Event(ctx context.Context, v T) error

	Count(ctx context.Context) (int, error)

	Snapshot(ctx context.Context) (Statistics[T], error)
}
