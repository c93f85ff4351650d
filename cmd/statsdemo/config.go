package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-yaml/yaml"
	"github.com/hyp3rd/ewrap"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/shashank-93rao/descriptive/pkg/stats/factory"
	"github.com/shashank-93rao/descriptive/pkg/stats/report"
)

// config is the resolved demo configuration
type config struct {
	Input    string
	Format   report.Format
	Impl     factory.StatsType
	Writers  int
	Events   int
	Pause    time.Duration
	LogLevel log.Level
}

// Environment variables and the option each one sets. A .env file in the
// working directory is loaded into the environment first.
var envOptions = map[string]string{
	"STATSDEMO_IMPL":      "impl",
	"STATSDEMO_FORMAT":    "format",
	"STATSDEMO_LOG_LEVEL": "log-level",
}

func defaultConfig() config {
	return config{
		Format:   report.Text,
		Impl:     factory.CH,
		Writers:  5,
		Events:   5,
		Pause:    time.Second,
		LogLevel: log.InfoLevel,
	}
}

func createFlagSet() *pflag.FlagSet {
	pf := pflag.NewFlagSet("statsdemo", pflag.ContinueOnError)
	pf.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of statsdemo:\nstatsdemo -i <dataset> [-f json]\nstatsdemo [--impl LB] [--writers 5] [--events 5]\n")
		fmt.Fprintf(os.Stderr, "\n%s", pf.FlagUsagesWrapped(10))
	}

	pf.StringP("input", "i", "", "Dataset file to describe. Without it a collector demo is run.")
	pf.StringP("format", "f", string(report.Text), "Report format: text, json, yaml or msgpack")
	pf.StringP("config", "c", "", "Use yaml configuration file")
	pf.String("impl", string(factory.CH), "Collector implementation: CH (channel based) or LB (lock based)")
	pf.Int("writers", 5, "Number of concurrent writers in the demo")
	pf.Int("events", 5, "Number of events each writer records")
	pf.Duration("pause", time.Second, "Base pause between writes. Each write waits one to three times this long.")
	pf.String("log-level", log.InfoLevel.String(), "Log level: debug, info, warn or error")

	return pf
}

// parse resolves the configuration. Later sources win: defaults, the
// environment, the yaml file named by -c and finally explicit flags.
func parse(args []string, pf *pflag.FlagSet, lookupEnv func(string) (string, bool)) (config, error) {
	cfg := defaultConfig()
	for env, name := range envOptions {
		if value, ok := lookupEnv(env); ok && value != "" {
			if err := cfg.set(name, value); err != nil {
				return cfg, ewrap.Wrapf(err, "environment %s", env)
			}
		}
	}

	type flagValue struct{ name, value string }
	var (
		configFile string
		flags      []flagValue
	)
	err := pf.ParseAll(args, func(flag *pflag.Flag, value string) error {
		if flag.Name == "config" {
			configFile = value
			return nil
		}
		flags = append(flags, flagValue{flag.Name, value})
		return nil
	})
	if err != nil {
		return cfg, err
	}

	if configFile != "" {
		if err := cfg.parseFromFile(configFile); err != nil {
			return cfg, err
		}
	}
	for _, f := range flags {
		if err := cfg.set(f.name, f.value); err != nil {
			return cfg, ewrap.Wrapf(err, "flag --%s", f.name)
		}
	}
	return cfg, nil
}

func (c *config) parseFromFile(fpath string) error {
	data, err := os.ReadFile(fpath)
	if err != nil {
		return ewrap.Wrapf(err, "failed to read config %s", fpath)
	}

	values := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &values); err != nil {
		return ewrap.Wrapf(err, "failed to parse config %s", fpath)
	}
	for k, v := range values {
		switch v.(type) {
		case string, int, float64, bool:
			if err := c.set(k, fmt.Sprint(v)); err != nil {
				return ewrap.Wrapf(err, "config %s", fpath)
			}
		default:
			return ewrap.Newf("could not process config key %s, unknown type", k)
		}
	}
	return nil
}

// set applies a single named option
func (c *config) set(name, value string) error {
	switch name {
	case "input":
		c.Input = value
	case "format":
		f, err := report.ParseFormat(value)
		if err != nil {
			return err
		}
		c.Format = f
	case "impl":
		tp, err := factory.ParseStatsType(value)
		if err != nil {
			return err
		}
		c.Impl = tp
	case "writers":
		n, err := positive(name, value)
		if err != nil {
			return err
		}
		c.Writers = n
	case "events":
		n, err := positive(name, value)
		if err != nil {
			return err
		}
		c.Events = n
	case "pause":
		d, err := time.ParseDuration(value)
		if err != nil {
			return ewrap.Wrapf(err, "invalid pause %q", value)
		}
		if d < 0 {
			return ewrap.Newf("pause cannot be negative: %s", value)
		}
		c.Pause = d
	case "log-level":
		level, err := log.ParseLevel(value)
		if err != nil {
			return ewrap.Wrap(err, "invalid log level")
		}
		c.LogLevel = level
	default:
		return ewrap.Newf("unknown option: %s", name)
	}
	return nil
}

func positive(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, ewrap.Wrapf(err, "invalid %s %q", name, value)
	}
	if n < 1 {
		return 0, ewrap.Newf("%s must be at least 1, got %d", name, n)
	}
	return n, nil
}
