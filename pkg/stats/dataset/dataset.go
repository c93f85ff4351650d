// Package dataset loads numeric datasets from files or streams.
package dataset

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-yaml/yaml"
	"github.com/goccy/go-json"
	"github.com/hyp3rd/ewrap"
	"github.com/shamaton/msgpack/v2"

	"github.com/shashank-93rao/descriptive"
)

// Format is the encoding of a dataset.
type Format string

const (
	// Lines holds one number per line. Blank lines and lines starting
	// with # are skipped.
	Lines Format = "lines"
	// JSON holds an array of numbers.
	JSON Format = "json"
	// YAML holds a sequence of numbers.
	YAML Format = "yaml"
	// Msgpack holds an array of numbers.
	Msgpack Format = "msgpack"
)

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON
	case ".yaml", ".yml":
		return YAML
	case ".msgpack", ".mp":
		return Msgpack
	default:
		return Lines
	}
}

// ReadFile reads the dataset at path in the format named by its extension.
func ReadFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ewrap.Wrapf(err, "failed to open dataset %s", path)
	}
	defer f.Close()

	values, err := Read(f, FormatFromPath(path))
	if err != nil {
		return nil, ewrap.Wrapf(err, "dataset %s", path)
	}
	return values, nil
}

// Read decodes every value from r. An empty input yields an empty slice.
func Read(r io.Reader, f Format) ([]float64, error) {
	if f == Lines {
		return readLines(r)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to read dataset")
	}
	values := []float64{}
	if len(strings.TrimSpace(string(data))) == 0 {
		return values, nil
	}

	switch f {
	case JSON:
		err = json.Unmarshal(data, &values)
	case YAML:
		err = yaml.Unmarshal(data, &values)
	case Msgpack:
		err = msgpack.Unmarshal(data, &values)
	default:
		return nil, ewrap.Wrapf(descriptive.ErrUnknownFormat, "dataset format %q", f)
	}
	if err != nil {
		return nil, ewrap.Wrapf(err, "failed to decode %s dataset", f)
	}
	if values == nil {
		values = []float64{}
	}
	return values, nil
}

func readLines(r io.Reader) ([]float64, error) {
	values := []float64{}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, ewrap.Wrapf(err, "line %d", line)
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, ewrap.Wrap(err, "failed to scan dataset")
	}
	return values, nil
}
