package utils

import (
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-torus/model"
)

// Seed places a named pattern on the starting board
type Seed struct {
	Pattern string `json:"pattern"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
}

// Config holds the configuration for the game. Board dimensions are fixed
// by model.BoardWidth and model.BoardHeight and cannot be configured.
type Config struct {
	FrameRate        time.Duration `json:"frame_rate"`
	MaxGenerations   int           `json:"max_generations"` // 0 runs until interrupted
	Seeds            []Seed        `json:"seeds"`
	RandomSeed       uint64        `json:"random_seed"` // 0 seeds from the clock
	ClearScreen      bool          `json:"clear_screen"`
	StagnationWindow int           `json:"stagnation_window"`
	LogLevel         string        `json:"log_level"`
}

// DefaultConfig returns the defaults: four gliders spaced along the top row
func DefaultConfig() Config {
	return Config{
		FrameRate:      50 * time.Millisecond,
		MaxGenerations: 0,
		Seeds: []Seed{
			{Pattern: "glider", X: 0, Y: 0},
			{Pattern: "glider", X: 16, Y: 0},
			{Pattern: "glider", X: 32, Y: 0},
			{Pattern: "glider", X: 48, Y: 0},
		},
		RandomSeed:       0,
		ClearScreen:      false,
		StagnationWindow: 5,
		LogLevel:         "info",
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}

// Validate checks the values that JSON decoding alone cannot rule out
func (c Config) Validate() error {
	if c.FrameRate < 0 {
		return errors.Errorf("[Validate] frame_rate must not be negative, got %s", c.FrameRate)
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("[Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	}
	if c.StagnationWindow < 1 {
		return errors.Errorf("[Validate] stagnation_window must be at least 1, got %d", c.StagnationWindow)
	}
	for i, s := range c.Seeds {
		if _, err := model.ParsePattern(s.Pattern); err != nil {
			return errors.Wrapf(err, "[Validate] seed %d", i)
		}
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps LogLevel onto a slog level
func (c Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, errors.Errorf("[SlogLevel] invalid log_level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel)
}
