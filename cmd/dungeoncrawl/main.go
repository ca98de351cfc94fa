// Package main is the entry point for dungeoncrawl.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeoncrawl/internal/game"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/ui"
)

// envLogFile names a file that receives the game log. The terminal belongs
// to the screen while playing, so without it logs are discarded.
const envLogFile = "DUNGEONCRAWL_LOG"

func main() {
	os.Exit(realMain())
}

// realMain returns the process exit code. Keeping it separate from main lets
// the deferred telemetry shutdown and log close run before os.Exit.
func realMain() int {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, telemetry.SettingsFromEnv(os.LookupEnv))
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	logger, closeLog, err := newLogger(os.Getenv(envLogFile))
	if err != nil {
		log.Printf("Failed to open log file: %v", err)
		return 1
	}
	defer closeLog()

	if err := run(ctx, logger); err != nil {
		logger.Error("game failed", "err", err)
		log.Printf("Game error: %v", err)
		return 1
	}
	return 0
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := game.DefaultConfig()
	if err != nil {
		return err
	}
	if cfg, err = cfg.WithEnv(os.LookupEnv); err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	cfg.Logger = logger

	engine, err := game.Start(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}

	tiles, err := ui.LoadTileset()
	if err != nil {
		return err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("open screen: %w", err)
	}
	defer screen.Close()

	if err := ui.NewSession(screen, tiles, engine, logger).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// newLogger returns a text logger writing to path, or a discarding logger
// when path is empty.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(slog.NewTextHandler(f, nil)), func() { _ = f.Close() }, nil
}
