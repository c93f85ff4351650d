package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/go-yaml/yaml"
	"github.com/goccy/go-json"
	"github.com/shamaton/msgpack/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashank-93rao/descriptive"
	"github.com/shashank-93rao/descriptive/pkg/stats"
)

func summarize[T descriptive.Scalar](t *testing.T, values []T) Summary {
	t.Helper()
	e, err := stats.New(values)
	require.NoError(t, err)
	return Summarize[T](e)
}

func TestSummarize(t *testing.T) {
	s := summarize(t, []int{2, 4, 4, 4, 5, 5, 7, 9})

	assert.Equal(t, 8, s.Count)
	assert.Equal(t, 5.0, s.Mean)
	assert.Equal(t, 4.5, s.Median)
	assert.Equal(t, 4.0, s.Mode)
	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 9.0, s.Max)
	assert.Equal(t, 7.0, s.Range)
	assert.Equal(t, 4.0, s.FirstQuartile)
	assert.Equal(t, 6.0, s.ThirdQuartile)
	assert.Equal(t, 2.0, s.InterquartileRange)
	assert.InDelta(t, 4.0, s.PopulationVariance, 1e-12)
	assert.InDelta(t, 2.0, s.PopulationStdDev, 1e-12)

	require.NotNil(t, s.PopulationSkewness)
	assert.InDelta(t, 2.625, *s.PopulationSkewness, 1e-12)
	require.NotNil(t, s.SampleVariance)
	assert.InDelta(t, 32.0/7.0, *s.SampleVariance, 1e-12)
	require.NotNil(t, s.SampleKurtosis)
	assert.InDelta(t, 5.840625, *s.SampleKurtosis, 1e-9)
	assert.Empty(t, s.Undefined)
}

func TestSummarizeUndefined(t *testing.T) {
	s := summarize(t, []float64{3, 3, 3})

	assert.Equal(t, 0.0, s.PopulationVariance)
	require.NotNil(t, s.SampleVariance)
	assert.Equal(t, 0.0, *s.SampleVariance)

	assert.Nil(t, s.PopulationSkewness)
	assert.Nil(t, s.PopulationKurtosis)
	assert.Nil(t, s.SampleSkewness)
	assert.Nil(t, s.SampleKurtosis)
	assert.Len(t, s.Undefined, 4)
	assert.Contains(t, s.Undefined["population_skewness"], "non-zero standard deviation")
	// too few values for the sample kurtosis
	assert.Contains(t, s.Undefined["sample_kurtosis"], "at least 4 values")
}

func TestParseFormat(t *testing.T) {
	tt := []struct {
		in      string
		exp     Format
		wantErr bool
	}{
		{in: "text", exp: Text},
		{in: "JSON", exp: JSON},
		{in: " yaml", exp: YAML},
		{in: "msgpack", exp: Msgpack},
		{in: "xml", wantErr: true},
	}
	for _, tc := range tt {
		t.Run(tc.in, func(t *testing.T) {
			f, err := ParseFormat(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, descriptive.ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.exp, f)
		})
	}
}

func TestEncodeText(t *testing.T) {
	s := summarize(t, []int{1, 1, 1, 1})

	var buf bytes.Buffer
	require.NoError(t, s.Encode(&buf, Text))
	out := buf.String()

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "count", strings.Fields(lines[0])[0])
	assert.Equal(t, "4", strings.Fields(lines[0])[1])
	assert.Contains(t, out, "mean")
	assert.Contains(t, out, "sample_variance")
	assert.Contains(t, out, "population_skewness  undefined (")
	assert.NotContains(t, out, "<nil>")
}

func TestEncodeJSON(t *testing.T) {
	s := summarize(t, []float64{1, 1, 1})

	var buf bytes.Buffer
	require.NoError(t, s.Encode(&buf, JSON))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 3.0, decoded["count"])
	assert.Equal(t, 1.0, decoded["mean"])
	assert.NotContains(t, decoded, "population_skewness")
	assert.Contains(t, decoded, "undefined")
}

func TestEncodeYAML(t *testing.T) {
	s := summarize(t, []int{1, 2, 3, 4, 5})

	var buf bytes.Buffer
	require.NoError(t, s.Encode(&buf, YAML))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.EqualValues(t, 5, decoded["count"])
	assert.EqualValues(t, 3, decoded["median"])
	assert.Equal(t, 2.5, decoded["sample_variance"])
}

func TestEncodeMsgpack(t *testing.T) {
	s := summarize(t, []float64{1, 2, 3, 4, 5, 9})

	var buf bytes.Buffer
	require.NoError(t, s.Encode(&buf, Msgpack))

	var decoded Summary
	require.NoError(t, msgpack.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 6, decoded.Count)
	assert.Equal(t, s.Mean, decoded.Mean)
	assert.Equal(t, s.Median, decoded.Median)
	assert.Equal(t, s.PopulationStdDev, decoded.PopulationStdDev)
	require.NotNil(t, decoded.SampleKurtosis)
	assert.Equal(t, *s.SampleKurtosis, *decoded.SampleKurtosis)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEncodeErrors(t *testing.T) {
	s := summarize(t, []int{1, 2})

	err := s.Encode(&bytes.Buffer{}, Format("csv"))
	assert.ErrorIs(t, err, descriptive.ErrUnknownFormat)

	assert.Error(t, s.Encode(failingWriter{}, JSON))
}
