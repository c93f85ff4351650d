package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-json"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashank-93rao/descriptive"
	"github.com/shashank-93rao/descriptive/pkg/stats/factory"
	"github.com/shashank-93rao/descriptive/pkg/stats/report"
)

func testConfig() config {
	cfg := defaultConfig()
	cfg.Pause = 0
	cfg.Format = report.JSON
	return cfg
}

func decode(t *testing.T, data []byte) map[string]any {
	t.Helper()
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestRunDescribesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.txt")
	require.NoError(t, os.WriteFile(path, []byte("# textbook\n2\n4\n4\n4\n5\n5\n7\n9\n"), 0o600))

	cfg := testConfig()
	cfg.Input = path
	logger, _ := logtest.NewNullLogger()

	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, &buf, logger))

	out := decode(t, buf.Bytes())
	assert.Equal(t, 8.0, out["count"])
	assert.Equal(t, 5.0, out["mean"])
	assert.Equal(t, 4.5, out["median"])
	assert.Equal(t, 2.0, out["population_stddev"])
}

func TestRunRejectsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o600))

	cfg := testConfig()
	cfg.Input = path
	logger, _ := logtest.NewNullLogger()

	err := run(context.Background(), cfg, &bytes.Buffer{}, logger)
	assert.ErrorIs(t, err, descriptive.ErrInvalidInput)
}

func TestRunApplication(t *testing.T) {
	for _, tp := range []factory.StatsType{factory.CH, factory.LB} {
		t.Run(string(tp), func(t *testing.T) {
			cfg := testConfig()
			cfg.Impl = tp
			cfg.Writers = 4
			cfg.Events = 3
			logger, hook := logtest.NewNullLogger()

			var buf bytes.Buffer
			require.NoError(t, run(context.Background(), cfg, &buf, logger))

			// every writer records 1..events
			out := decode(t, buf.Bytes())
			assert.Equal(t, 12.0, out["count"])
			assert.Equal(t, 2.0, out["mean"])
			assert.Equal(t, 1.0, out["min"])
			assert.Equal(t, 3.0, out["max"])
			assert.Equal(t, 1.0, out["mode"])

			var final bool
			for _, entry := range hook.AllEntries() {
				if entry.Message == "Final Stats: Count: 12, Min: 1, Max: 3, Mean: 2.000000, Variance: 0.666667" {
					final = true
				}
			}
			assert.True(t, final)
		})
	}
}

func TestRunApplicationCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := testConfig()
	cfg.Pause = time.Hour
	logger, hook := logtest.NewNullLogger()

	var buf bytes.Buffer
	require.NoError(t, run(ctx, cfg, &buf, logger))
	assert.Empty(t, buf.String())

	var messages []string
	for _, entry := range hook.AllEntries() {
		messages = append(messages, entry.Message)
	}
	assert.Contains(t, messages, "No values were recorded")
}

func TestJitter(t *testing.T) {
	assert.Zero(t, jitter(0))
	for i := 0; i < 20; i++ {
		d := jitter(time.Millisecond)
		assert.GreaterOrEqual(t, d, time.Millisecond)
		assert.LessOrEqual(t, d, 3*time.Millisecond)
	}
}
