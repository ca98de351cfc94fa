package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeoncrawl/internal/combat"
	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Engine owns the grid and every entity on it. It is not safe for concurrent
// use: callers feed it one intent at a time.
type Engine struct {
	rules    gamedata.Rules
	seed     int64
	rng      *rand.Rand
	gen      *world.Generator
	resolver *combat.Resolver
	logger   *slog.Logger

	grid    *world.Grid
	hero    *entity.Hero
	enemies []*entity.Enemy

	phase    Phase
	turn     int
	messages []string
}

// New generates a dungeon, places items, the hero and enemies, and returns an
// engine ready for the first intent. A world.ErrNoValidPosition error means
// the map was too cramped; callers decide whether to try again. Rules that
// fail Validate are rejected before anything is generated.
func New(ctx context.Context, cfg Config) (*Engine, error) {
	if err := cfg.Rules.Validate(); err != nil {
		return nil, err
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	e := newEngine(cfg)

	grid, err := e.gen.Generate(ctx)
	if err != nil {
		span.SetAttributes(attribute.String("error", err.Error()))
		return nil, fmt.Errorf("generate dungeon: %w", err)
	}
	e.grid = grid

	if err := e.place(); err != nil {
		span.SetAttributes(attribute.String("error", err.Error()))
		return nil, fmt.Errorf("place entities: %w", err)
	}

	span.SetAttributes(
		attribute.Int64("game.seed", e.seed),
		attribute.Int("dungeon.rooms", len(grid.Rooms)),
		attribute.Int("hero.start_x", e.hero.Pos.X),
		attribute.Int("hero.start_y", e.hero.Pos.Y),
		attribute.Int("enemy_count", len(e.enemies)),
		attribute.String("enemy_policy", string(e.rules.EnemyPolicy)),
	)
	e.logger.Info("game initialized",
		"seed", e.seed,
		"rooms", len(grid.Rooms),
		"floor_tiles", grid.FloorCount(),
		"enemies", len(e.enemies),
	)

	return e, nil
}

// newEngine wires the collaborators without generating a map.
func newEngine(cfg Config) *Engine {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	return &Engine{
		rules:    cfg.Rules,
		seed:     seed,
		rng:      rng,
		gen:      world.NewGenerator(cfg.Rules.Map, rng),
		resolver: combat.NewResolver(cfg.Rules.Combat, cfg.Rules.Enemy),
		logger:   cfg.logger(),
		phase:    PhaseAwaitingInput,
		messages: []string{"Find and defeat every enemy."},
	}
}

// Seed returns the seed the engine's randomness was derived from.
func (e *Engine) Seed() int64 { return e.seed }

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.phase }

// Outcome returns how the game ended, or OutcomeNone while it is running.
func (e *Engine) Outcome() Outcome {
	switch e.phase {
	case PhaseVictory:
		return OutcomeVictory
	case PhaseDefeat:
		return OutcomeDefeat
	default:
		return OutcomeNone
	}
}

// Turn returns the number of accepted turns.
func (e *Engine) Turn() int { return e.turn }

// EnemyCount returns the number of live enemies.
func (e *Engine) EnemyCount() int { return len(e.enemies) }

// enemyIndexAt returns the index of the enemy on p, or -1.
func (e *Engine) enemyIndexAt(p world.Point) int {
	for i, enemy := range e.enemies {
		if enemy.Pos == p {
			return i
		}
	}
	return -1
}
