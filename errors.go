package descriptive

import "github.com/hyp3rd/ewrap"

var (
	// ErrInvalidInput is returned when the dataset is empty or holds too few
	// values for the requested statistic.
	ErrInvalidInput = ewrap.New("invalid input")

	// ErrUndefinedResult is returned when a formula's denominator is zero,
	// which happens for datasets whose values are all equal.
	ErrUndefinedResult = ewrap.New("undefined result")

	// ErrCollectorClosed is returned by a collector whose lifetime context has ended.
	ErrCollectorClosed = ewrap.New("collector closed")

	// ErrUnknownCollector is returned when a collector type is not recognized.
	ErrUnknownCollector = ewrap.New("unknown collector type")

	// ErrUnknownFormat is returned when a report or dataset format is not recognized.
	ErrUnknownFormat = ewrap.New("unknown format")
)
