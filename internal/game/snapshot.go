package game

import (
	"slices"

	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// HeroState is a copy of the hero's observable state.
type HeroState struct {
	Pos       world.Point
	Health    int
	MaxHealth int
	Strength  int
}

// EnemyState is a copy of one enemy's observable state.
type EnemyState struct {
	ID        int
	Pos       world.Point
	Health    int
	MaxHealth int
}

// Snapshot is everything a renderer needs after a turn. It shares no memory
// with the engine.
type Snapshot struct {
	Width, Height int
	Cells         [][]world.Symbol // Row-major: Cells[y][x]
	Hero          HeroState
	Enemies       []EnemyState
	Phase         Phase
	Outcome       Outcome
	Turn          int
	Seed          int64
	Messages      []string
}

// Snapshot copies the current state.
func (e *Engine) Snapshot() Snapshot {
	enemies := make([]EnemyState, 0, len(e.enemies))
	for _, enemy := range e.enemies {
		enemies = append(enemies, EnemyState{
			ID:        enemy.ID,
			Pos:       enemy.Pos,
			Health:    enemy.Health,
			MaxHealth: enemy.MaxHealth,
		})
	}

	return Snapshot{
		Width:  e.grid.Width,
		Height: e.grid.Height,
		Cells:  e.grid.Symbols(),
		Hero: HeroState{
			Pos:       e.hero.Pos,
			Health:    e.hero.Health,
			MaxHealth: e.hero.MaxHealth,
			Strength:  e.hero.Strength,
		},
		Enemies:  enemies,
		Phase:    e.phase,
		Outcome:  e.Outcome(),
		Turn:     e.turn,
		Seed:     e.seed,
		Messages: slices.Clone(e.messages),
	}
}

// EnemyAt returns the enemy standing on p, if any.
func (s Snapshot) EnemyAt(p world.Point) (EnemyState, bool) {
	for _, enemy := range s.Enemies {
		if enemy.Pos == p {
			return enemy, true
		}
	}
	return EnemyState{}, false
}
