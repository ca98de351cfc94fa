package game

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
)

// Environment variables that override the embedded rules.
const (
	EnvSeed             = "DUNGEONCRAWL_SEED"
	EnvEnemyPolicy      = "DUNGEONCRAWL_ENEMY_POLICY"
	EnvRequireConnected = "DUNGEONCRAWL_REQUIRE_CONNECTED"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Rules are the tuning constants. Zero value is not usable; start from DefaultConfig.
	Rules gamedata.Rules

	// Logger receives turn and lifecycle records. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns a config built from the embedded rules.
func DefaultConfig() (Config, error) {
	rules, err := gamedata.LoadRules()
	if err != nil {
		return Config{}, fmt.Errorf("load rules: %w", err)
	}
	return Config{Rules: rules}, nil
}

// WithEnv applies environment overrides read through lookup (usually os.LookupEnv).
func (c Config) WithEnv(lookup func(string) (string, bool)) (Config, error) {
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v, ok := lookup(EnvEnemyPolicy); ok && v != "" {
		c.Rules.EnemyPolicy = gamedata.EnemyPolicy(v)
	}
	if v, ok := lookup(EnvRequireConnected); ok && v != "" {
		required, err := strconv.ParseBool(v)
		if err != nil {
			return c, fmt.Errorf("%s: %w", EnvRequireConnected, err)
		}
		c.Rules.Map.RequireConnected = required
	}
	if err := c.Rules.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
