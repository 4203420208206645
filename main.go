package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-torus/utils"
)

const configFile = "config.json"

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, configFile); err != nil {
		slog.Error("Simulation failed", "error", err)
		stop()
		os.Exit(1)
	}
}

// loadConfig loads the config file, falling back to defaults when it is missing.
// The bool reports whether the defaults were used.
func loadConfig(filename string) (utils.Config, bool, error) {
	config, err := utils.LoadConfig(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return utils.DefaultConfig(), true, nil
		}
		return config, false, err
	}
	return config, false, nil
}

// run wires the configuration, logger and game loop together
func run(ctx context.Context, out, logOut io.Writer, configPath string) error {
	config, defaulted, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	level, err := config.SlogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))
	if defaulted {
		logger.Debug("Using default configuration", "file", configPath)
	}

	g, err := initializeGame(config, out, logger)
	if err != nil {
		return err
	}
	g.displayGameInfo()

	return g.run(ctx)
}
