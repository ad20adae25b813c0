package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/povarna/algo-drills/internal/setup"
	"github.com/povarna/algo-drills/internal/setup/logger"
	"github.com/povarna/algo-drills/internal/stream"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Load env
	_ = godotenv.Load()

	cfg := setup.LoadConfig()
	lg := logger.New(cfg.LogLevel)
	log.Logger = lg

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, &lg); err != nil {
		lg.Error().Err(err).Msg("Drills worker failed")
		cancel()
		os.Exit(1)
	}

	log.Info().Msg("Drills worker stopped")
}

// run returns instead of exiting so the deferred closes always happen.
func run(ctx context.Context, cfg *setup.Config, lg *zerolog.Logger) error {
	deps, err := setup.Wire(ctx, cfg, lg)
	if err != nil {
		return fmt.Errorf("failed to wire dependencies: %w", err)
	}
	defer deps.Close()

	consumer, err := stream.NewStreamConsumer(ctx, cfg.StreamConfig(), deps.Executor, lg)
	if err != nil {
		return fmt.Errorf("failed to create stream consumer: %w", err)
	}
	defer func() {
		lg.Info().Msg("Shutting down...")
		if err := consumer.Stop(); err != nil {
			lg.Warn().Err(err).Msg("Failed to close stream client")
		}
	}()

	if err := consumer.Setup(ctx); err != nil {
		return fmt.Errorf("failed to setup consumer: %w", err)
	}

	// Start consumer, blocks until ctx is canceled
	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("consumer stopped: %w", err)
	}

	return nil
}
