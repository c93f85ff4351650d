// Package report flattens a statistics snapshot into a Summary and writes it
// out as text, JSON, YAML or msgpack.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/go-yaml/yaml"
	"github.com/goccy/go-json"
	"github.com/hyp3rd/ewrap"
	"github.com/shamaton/msgpack/v2"

	"github.com/shashank-93rao/descriptive"
)

// Format is an output encoding for a Summary.
type Format string

const (
	Text    Format = "text"
	JSON    Format = "json"
	YAML    Format = "yaml"
	Msgpack Format = "msgpack"
)

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case Text, JSON, YAML, Msgpack:
		return f, nil
	default:
		return "", ewrap.Wrapf(descriptive.ErrUnknownFormat, "report format %q", name)
	}
}

// Summary holds every statistic of a dataset. Statistics that can be
// undefined are nil when they are, with the reason kept in Undefined.
type Summary struct {
	Count              int     `json:"count" yaml:"count" msgpack:"count"`
	Mean               float64 `json:"mean" yaml:"mean" msgpack:"mean"`
	Median             float64 `json:"median" yaml:"median" msgpack:"median"`
	Mode               float64 `json:"mode" yaml:"mode" msgpack:"mode"`
	Min                float64 `json:"min" yaml:"min" msgpack:"min"`
	Max                float64 `json:"max" yaml:"max" msgpack:"max"`
	Range              float64 `json:"range" yaml:"range" msgpack:"range"`
	FirstQuartile      float64 `json:"first_quartile" yaml:"first_quartile" msgpack:"first_quartile"`
	ThirdQuartile      float64 `json:"third_quartile" yaml:"third_quartile" msgpack:"third_quartile"`
	InterquartileRange float64 `json:"interquartile_range" yaml:"interquartile_range" msgpack:"interquartile_range"`
	PopulationVariance float64 `json:"population_variance" yaml:"population_variance" msgpack:"population_variance"`
	PopulationStdDev   float64 `json:"population_stddev" yaml:"population_stddev" msgpack:"population_stddev"`

	PopulationSkewness *float64 `json:"population_skewness,omitempty" yaml:"population_skewness,omitempty" msgpack:"population_skewness"`
	PopulationKurtosis *float64 `json:"population_kurtosis,omitempty" yaml:"population_kurtosis,omitempty" msgpack:"population_kurtosis"`
	SampleVariance     *float64 `json:"sample_variance,omitempty" yaml:"sample_variance,omitempty" msgpack:"sample_variance"`
	SampleStdDev       *float64 `json:"sample_stddev,omitempty" yaml:"sample_stddev,omitempty" msgpack:"sample_stddev"`
	SampleSkewness     *float64 `json:"sample_skewness,omitempty" yaml:"sample_skewness,omitempty" msgpack:"sample_skewness"`
	SampleKurtosis     *float64 `json:"sample_kurtosis,omitempty" yaml:"sample_kurtosis,omitempty" msgpack:"sample_kurtosis"`

	Undefined map[string]string `json:"undefined,omitempty" yaml:"undefined,omitempty" msgpack:"undefined"`
}

// Summarize evaluates every statistic of s.
func Summarize[T descriptive.Scalar](s descriptive.Statistics[T]) Summary {
	sum := Summary{
		Count:              s.Count(),
		Mean:               s.Mean(),
		Median:             s.Median(),
		Mode:               float64(s.Mode()),
		Min:                float64(s.Min()),
		Max:                float64(s.Max()),
		Range:              float64(s.Range()),
		FirstQuartile:      float64(s.FirstQuartile()),
		ThirdQuartile:      float64(s.ThirdQuartile()),
		InterquartileRange: float64(s.InterquartileRange()),
		PopulationVariance: s.PopulationVariance(),
		PopulationStdDev:   s.PopulationStdDev(),
	}

	fallible := []struct {
		name string
		fn   func() (float64, error)
		dst  **float64
	}{
		{"population_skewness", s.PopulationSkewness, &sum.PopulationSkewness},
		{"population_kurtosis", s.PopulationKurtosis, &sum.PopulationKurtosis},
		{"sample_variance", s.SampleVariance, &sum.SampleVariance},
		{"sample_stddev", s.SampleStdDev, &sum.SampleStdDev},
		{"sample_skewness", s.SampleSkewness, &sum.SampleSkewness},
		{"sample_kurtosis", s.SampleKurtosis, &sum.SampleKurtosis},
	}
	for _, f := range fallible {
		v, err := f.fn()
		if err != nil {
			if sum.Undefined == nil {
				sum.Undefined = make(map[string]string)
			}
			sum.Undefined[f.name] = err.Error()
			continue
		}
		*f.dst = &v
	}
	return sum
}

// Encode writes the summary to w in format f.
func (s Summary) Encode(w io.Writer, f Format) error {
	var (
		data []byte
		err  error
	)
	switch f {
	case Text:
		return s.writeText(w)
	case JSON:
		data, err = json.MarshalIndent(s, "", "  ")
		data = append(data, '\n')
	case YAML:
		data, err = yaml.Marshal(s)
	case Msgpack:
		data, err = msgpack.Marshal(s)
	default:
		return ewrap.Wrapf(descriptive.ErrUnknownFormat, "report format %q", f)
	}
	if err != nil {
		return ewrap.Wrapf(err, "failed to marshal %s report", f)
	}
	if _, err = w.Write(data); err != nil {
		return ewrap.Wrap(err, "failed to write report")
	}
	return nil
}

// writeText prints one aligned "name value" row per statistic
func (s Summary) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := []struct {
		name  string
		value float64
	}{
		{"mean", s.Mean},
		{"median", s.Median},
		{"mode", s.Mode},
		{"min", s.Min},
		{"max", s.Max},
		{"range", s.Range},
		{"first_quartile", s.FirstQuartile},
		{"third_quartile", s.ThirdQuartile},
		{"interquartile_range", s.InterquartileRange},
		{"population_variance", s.PopulationVariance},
		{"population_stddev", s.PopulationStdDev},
	}
	fmt.Fprintf(tw, "count\t%d\n", s.Count)
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", r.name, formatFloat(r.value))
	}

	optional := []struct {
		name  string
		value *float64
	}{
		{"population_skewness", s.PopulationSkewness},
		{"population_kurtosis", s.PopulationKurtosis},
		{"sample_variance", s.SampleVariance},
		{"sample_stddev", s.SampleStdDev},
		{"sample_skewness", s.SampleSkewness},
		{"sample_kurtosis", s.SampleKurtosis},
	}
	for _, r := range optional {
		if r.value != nil {
			fmt.Fprintf(tw, "%s\t%s\n", r.name, formatFloat(*r.value))
		}
	}

	names := make([]string, 0, len(s.Undefined))
	for name := range s.Undefined {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(tw, "%s\tundefined (%s)\n", name, s.Undefined[name])
	}

	if err := tw.Flush(); err != nil {
		return ewrap.Wrap(err, "failed to write report")
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
