package stats

import (
	"math"

	"github.com/hyp3rd/ewrap"

	"github.com/shashank-93rao/descriptive"
)

// PopulationVariance returns the variance of the dataset treated as a whole population.
func (e *Engine[T]) PopulationVariance() float64 {
	return e.deviationSum(e.Mean(), 2) / e.n()
}

// PopulationStdDev returns the standard deviation, sigma, of the population.
func (e *Engine[T]) PopulationStdDev() float64 {
	return math.Sqrt(e.PopulationVariance())
}

// PopulationSkewness relates the third moment about the mean to the
// population standard deviation.
func (e *Engine[T]) PopulationSkewness() (float64, error) {
	sd := e.PopulationStdDev()
	if sd == 0 {
		return 0, ewrap.Wrap(descriptive.ErrUndefinedResult, "population skewness needs a non-zero standard deviation")
	}
	sum := e.deviationSum(e.Mean(), 3)
	return (1 / e.n()) * (sum / sd), nil
}

// PopulationKurtosis relates the fourth moment about the mean to the square
// of the second.
func (e *Engine[T]) PopulationKurtosis() (float64, error) {
	mean := e.Mean()
	second := e.deviationSum(mean, 2)
	if second == 0 {
		return 0, ewrap.Wrap(descriptive.ErrUndefinedResult, "population kurtosis needs a non-zero variance")
	}
	fourth := e.deviationSum(mean, 4)
	return e.n() * (fourth / (second * second)), nil
}

// SampleVariance returns the variance of the dataset treated as a sample,
// using N-1 as the denominator. It needs at least two values.
func (e *Engine[T]) SampleVariance() (float64, error) {
	if e.count <= 1 {
		return 0, ewrap.Wrapf(descriptive.ErrInvalidInput, "sample variance needs at least 2 values, have %d", e.count)
	}
	return e.deviationSum(e.Mean(), 2) / (e.n() - 1), nil
}

// SampleStdDev returns the standard deviation of the sample.
func (e *Engine[T]) SampleStdDev() (float64, error) {
	v, err := e.SampleVariance()
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// SampleSkewness is the bias-corrected counterpart of PopulationSkewness.
// It needs at least three values.
func (e *Engine[T]) SampleSkewness() (float64, error) {
	if e.count < 3 {
		return 0, ewrap.Wrapf(descriptive.ErrInvalidInput, "sample skewness needs at least 3 values, have %d", e.count)
	}
	sd, err := e.SampleStdDev()
	if err != nil {
		return 0, err
	}
	if sd == 0 {
		return 0, ewrap.Wrap(descriptive.ErrUndefinedResult, "sample skewness needs a non-zero standard deviation")
	}
	n := e.n()
	sum := e.deviationSum(e.Mean(), 3)
	return (n / ((n - 1) * (n - 2))) * (sum / sd), nil
}

// SampleKurtosis is the bias-corrected counterpart of PopulationKurtosis.
// It needs at least four values.
func (e *Engine[T]) SampleKurtosis() (float64, error) {
	if e.count < 4 {
		return 0, ewrap.Wrapf(descriptive.ErrInvalidInput, "sample kurtosis needs at least 4 values, have %d", e.count)
	}
	kurtosis, err := e.PopulationKurtosis()
	if err != nil {
		return 0, err
	}
	n := e.n()
	return (n * (n + 1) * (n - 1)) / ((n - 2) * (n - 3)) * (kurtosis / n), nil
}

// deviationSum returns the sum over the dataset of (x - mean)^power. Every
// moment based statistic goes through it.
func (e *Engine[T]) deviationSum(mean float64, power float64) float64 {
	sum := 0.0
	for _, v := range e.values {
		sum += math.Pow(float64(v)-mean, power)
	}
	return sum
}
