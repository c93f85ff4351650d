package main

import (
	"context"
	"errors"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hyp3rd/ewrap"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/shashank-93rao/descriptive"
	"github.com/shashank-93rao/descriptive/pkg/stats"
	"github.com/shashank-93rao/descriptive/pkg/stats/dataset"
	"github.com/shashank-93rao/descriptive/pkg/stats/factory"
	"github.com/shashank-93rao/descriptive/pkg/stats/report"
)

// Describes a dataset file, or demonstrates the collectors when no file is
// given. Pick the collector implementation with --impl.
func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	_ = godotenv.Load(".env")

	cfg, err := parse(os.Args[1:], createFlagSet(), os.LookupEnv)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatalf("Invalid configuration: %v", err)
	}
	log.SetLevel(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create channel to receive sys interrupts
	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM)
	// In a separate thread, wait for any interruptions
	go func() {
		select {
		case <-sigChannel:
			log.Info("Received SIGTERM")
			// Notify the writers to stop working
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := run(ctx, cfg, os.Stdout, log.StandardLogger()); err != nil {
		log.Fatalf("Failed: %v", err)
	}
	log.Info("Done!!")
}

// run describes cfg.Input when set and runs the collector demo otherwise
func run(ctx context.Context, cfg config, w io.Writer, logger log.FieldLogger) error {
	if cfg.Input != "" {
		return describeFile(cfg, w, logger)
	}
	return runApplication(ctx, cfg, w, logger)
}

// Writes the report of a dataset file
func describeFile(cfg config, w io.Writer, logger log.FieldLogger) error {
	values, err := dataset.ReadFile(cfg.Input)
	if err != nil {
		return err
	}
	logger.Infof("Read %d values from %s", len(values), cfg.Input)

	engine, err := stats.New(values)
	if err != nil {
		return ewrap.Wrapf(err, "describe %s", cfg.Input)
	}
	return report.Summarize[float64](engine).Encode(w, cfg.Format)
}

// Runs the writers against a collector and writes the report of everything
// they recorded. Cancelling ctx stops the writers early; the report then
// covers what was recorded until then.
func runApplication(ctx context.Context, cfg config, w io.Writer, logger log.FieldLogger) error {
	// The collector outlives the writers so the final snapshot can still
	// be taken after an interrupt
	lifetime, stop := context.WithCancel(context.Background())
	defer stop()

	collector, err := factory.GetCollector[float64](lifetime, cfg.Impl, descriptive.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Infof("Using %s collector with %d writers", cfg.Impl, cfg.Writers)

	// Start threads to populate and query data
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < cfg.Writers; i++ {
		id := i + 1
		g.Go(func() error {
			return writeAndQuery(gctx, id, cfg, collector, logger)
		})
	}
	// Wait for all the threads to stop
	if err := g.Wait(); err != nil {
		return ewrap.Wrap(err, "writer failed")
	}

	snapshot, err := collector.Snapshot(lifetime)
	if errors.Is(err, descriptive.ErrInvalidInput) {
		logger.Warn("No values were recorded")
		return nil
	}
	if err != nil {
		return err
	}
	logger.Infof("Final Stats: Count: %d, Min: %v, Max: %v, Mean: %f, Variance: %f",
		snapshot.Count(), snapshot.Min(), snapshot.Max(), snapshot.Mean(), snapshot.PopulationVariance())
	return report.Summarize(snapshot).Encode(w, cfg.Format)
}

// Periodically writes events and queries stats
func writeAndQuery(ctx context.Context, id int, cfg config, collector descriptive.Collector[float64], logger log.FieldLogger) error {
	threadLog := logger.WithField("thread", id)
	for i := 0; i < cfg.Events; i++ {
		select {
		// if the caller chain cancels
		case <-ctx.Done():
			threadLog.Info("Thread exiting")
			return nil
		case <-time.After(jitter(cfg.Pause)): // else write and read
		}

		threadLog.Debugf("Thread woke up to write: %d", i+1)
		if err := collector.Event(ctx, float64(i+1)); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		snapshot, err := collector.Snapshot(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		threadLog.Infof("Stats: Count: %d, Min: %v, Max: %v, Mean: %f, Variance: %f",
			snapshot.Count(), snapshot.Min(), snapshot.Max(), snapshot.Mean(), snapshot.PopulationVariance())
	}
	return nil
}

// jitter spreads writes between one and three times the base pause
func jitter(base time.Duration) time.Duration {
	if base <= 0 {
		return 0
	}
	return base * time.Duration(1+rand.IntN(3))
}
