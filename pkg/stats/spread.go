package stats

import "github.com/shashank-93rao/descriptive"

// Max returns the largest value in the dataset.
func (e *Engine[T]) Max() T {
	return e.values[e.count-1]
}

// Min returns the smallest value in the dataset.
func (e *Engine[T]) Min() T {
	return e.values[0]
}

// Range returns the distance between the largest and smallest values.
func (e *Engine[T]) Range() T {
	return e.Max() - e.Min()
}

// FirstQuartile returns the median of the lower half of the dataset: every
// value less than or equal to the overall median.
func (e *Engine[T]) FirstQuartile() T {
	lower, _ := e.halves()
	return medianOf(lower)
}

// ThirdQuartile returns the median of the upper half of the dataset: every
// value greater than or equal to the overall median.
func (e *Engine[T]) ThirdQuartile() T {
	_, upper := e.halves()
	return medianOf(upper)
}

// InterquartileRange returns the distance between the first and third quartiles.
func (e *Engine[T]) InterquartileRange() T {
	return e.ThirdQuartile() - e.FirstQuartile()
}

// halves splits the sorted values around the median by index. The lower half
// runs up to the lower centre value and the upper half starts at the upper
// centre value, each extended over its run of ties. Comparisons stay in T so
// wide integers are never rounded through float64. NaN belongs to neither
// half, and a NaN centre value leaves both halves empty.
func (e *Engine[T]) halves() (lower, upper []T) {
	lo, hi := e.values[(e.count-1)/2], e.values[e.count/2]
	if isNaN(lo) || isNaN(hi) {
		return nil, nil
	}
	// NaN sorts first
	start := 0
	for isNaN(e.values[start]) {
		start++
	}

	k := (e.count-1)/2 + 1
	for k < e.count && e.values[k] <= lo {
		k++
	}
	j := e.count / 2
	for j > start && e.values[j-1] >= hi {
		j--
	}
	return e.values[start:k], e.values[j:]
}

func isNaN[T descriptive.Scalar](v T) bool {
	return v != v
}

// medianOf returns the median of a sorted slice in T arithmetic, so integer
// types truncate the average of the centre pair toward zero. An empty slice,
// which only NaN values can produce, yields the zero value.
func medianOf[T descriptive.Scalar](sorted []T) T {
	n := len(sorted)
	if n == 0 {
		var zero T
		return zero
	}
	mid := n / 2
	if n%2 != 0 {
		return sorted[mid]
	}
	return midpoint(sorted[mid-1], sorted[mid])
}

// midpoint returns (a+b)/2 for a <= b without overflowing T. Integer results
// truncate toward zero.
func midpoint[T descriptive.Scalar](a, b T) T {
	if T(1)/2 != 0 {
		// floating point
		return a/2 + b/2
	}
	var zero T
	switch {
	case a >= zero:
		return a + (b-a)/2
	case b < zero:
		return b - (b-a)/2
	default:
		// opposite signs cannot overflow
		return (a + b) / 2
	}
}
