package cli

import (
	"context"

	"github.com/gabapcia/mempoolwatch/internal/config"
	"github.com/gabapcia/mempoolwatch/internal/pkg/logger"
	"github.com/gabapcia/mempoolwatch/internal/pkg/telemetry"
	"github.com/gabapcia/mempoolwatch/internal/txtrack"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
)

// setupObservability starts telemetry when enabled and then the logger, so the logger
// can bridge records to the telemetry backend. The returned function flushes both.
func setupObservability(ctx context.Context, cfg config.Config) (func(), error) {
	shutdownTelemetry := telemetry.ShutdownFunc(func(context.Context) error { return nil })
	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.TelemetryServiceName)
		if err != nil {
			return nil, err
		}
		shutdownTelemetry = shutdown
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		_ = shutdownTelemetry(ctx)
		return nil, err
	}

	return func() {
		_ = logger.Sync()
		if err := shutdownTelemetry(context.WithoutCancel(ctx)); err != nil {
			logger.Warn(ctx, "failed to shut down telemetry", "error", err)
		}
	}, nil
}

// trackCommand returns a CLI command that collects a sample of pending transactions
// sent to the configured contract and prints them ordered by value.
//
// Usage example:
//
//	TARGET_CONTRACT_ADDRESS=0xdAC17F958D2ee523a2206206994597C13D831ec7 mempoolwatch track --sample-size 10
//
// The command ends when the sample is full, the node feed ends or the context is
// canceled. A partial sample is still printed when the feed ends early.
func trackCommand(load ConfigLoader, newTracker TrackerFactory) *cli.Command {
	return &cli.Command{
		Name:        "track",
		Description: "Collects pending transactions sent to TARGET_CONTRACT_ADDRESS and prints them ordered by value.",
		Usage:       "Subscribes to the node's pending transactions until the sample is full.",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "sample-size",
				Usage: "Number of matching transactions to collect (overrides MEMPOOLWATCH_SAMPLE_SIZE)",
			},
			&cli.StringSliceFlag{
				Name:  "env-file",
				Usage: "Dotenv file to load before reading the environment (default: .env)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := load(c.StringSlice("env-file")...)
			if err != nil {
				return err
			}

			if c.IsSet("sample-size") {
				cfg.SampleSize = int(c.Int("sample-size"))
				if err := config.Validate(cfg); err != nil {
					return err
				}
			}

			shutdown, err := setupObservability(ctx, cfg)
			if err != nil {
				return err
			}
			defer shutdown()

			ctx = logger.Derive(ctx, "run.id", uuid.Must(uuid.NewV7()).String())

			svc, cleanup, err := newTracker(ctx, cfg)
			if err != nil {
				logger.Error(ctx, "failed to initialize tracker", "error", err)
				return err
			}
			defer cleanup()

			report, err := svc.Run(ctx)
			if report.State != txtrack.StateStoppedFatal {
				if renderErr := renderReport(c.Root().Writer, report); renderErr != nil {
					return renderErr
				}
			}

			return err
		},
	}
}
