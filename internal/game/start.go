package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Start calls New up to Rules.InitAttempts times, drawing a fresh map after
// each cramped or disconnected one. A fixed seed advances by one per retry so
// runs stay reproducible.
func Start(ctx context.Context, cfg Config) (*Engine, error) {
	attempts := cfg.Rules.InitAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		e, err := New(ctx, cfg)
		if err == nil {
			return e, nil
		}
		if !errors.Is(err, world.ErrNoValidPosition) && !errors.Is(err, world.ErrDisconnected) {
			return nil, err
		}
		lastErr = err
		cfg.logger().Warn("dungeon rejected, retrying", "attempt", attempt+1, "err", err)
		if cfg.Seed != 0 {
			cfg.Seed++
		}
	}
	return nil, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}
