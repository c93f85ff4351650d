package factory

import (
	"context"
	"strings"

	"github.com/hyp3rd/ewrap"

	"github.com/shashank-93rao/descriptive"
	"github.com/shashank-93rao/descriptive/pkg/stats/async/chbased"
	"github.com/shashank-93rao/descriptive/pkg/stats/async/lockbased"
)

// StatsType is enum of various collector implementations
type StatsType string

const (
	CH StatsType = "CH"
	LB StatsType = "LB"
)

// GetCollector returns the collector implementation named by tp, bound to ctx.
func GetCollector[T descriptive.Scalar](ctx context.Context, tp StatsType, opts ...descriptive.CollectorOption) (c descriptive.Collector[T], err error) {
	switch tp {
	case LB:
		c, err = lockbased.NewCollector[T](ctx, opts...)
	case CH:
		c, err = chbased.NewCollector[T](ctx, opts...)
	default:
		err = ewrap.Wrap(descriptive.ErrUnknownCollector, string(tp))
	}
	return
}

// ParseStatsType maps a case-insensitive name to a StatsType.
func ParseStatsType(name string) (StatsType, error) {
	switch tp := StatsType(strings.ToUpper(strings.TrimSpace(name))); tp {
	case CH, LB:
		return tp, nil
	default:
		return "", ewrap.Wrap(descriptive.ErrUnknownCollector, name)
	}
}
