package entity

import (
	"strconv"

	"github.com/samdwyer/dungeoncrawl/internal/combat"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Enemy represents a hostile creature in the dungeon.
type Enemy struct {
	ID        int // Stable identifier, assigned in spawn order
	Pos       world.Point
	Health    int
	MaxHealth int
	Strength  int
}

// NewEnemy creates an enemy at pos with the stats from rules.
func NewEnemy(id int, pos world.Point, rules gamedata.EnemyRules) *Enemy {
	return &Enemy{
		ID:        id,
		Pos:       pos,
		Health:    rules.Health,
		MaxHealth: rules.Health,
		Strength:  1,
	}
}

// GetName returns a name that tells enemies apart in messages.
func (e *Enemy) GetName() string { return "Enemy " + strconv.Itoa(e.ID) }

// IsAlive returns true if the enemy has health remaining.
func (e *Enemy) IsAlive() bool { return e.Health > 0 }

// GetHealth returns current health.
func (e *Enemy) GetHealth() int { return e.Health }

// GetMaxHealth returns starting health.
func (e *Enemy) GetMaxHealth() int { return e.MaxHealth }

// GetStrength returns the damage multiplier.
func (e *Enemy) GetStrength() int { return e.Strength }

// TakeDamage reduces health, never below zero, and returns actual damage taken.
func (e *Enemy) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > e.Health {
		actual = e.Health
	}
	e.Health -= actual
	return actual
}

var _ combat.Attacker = (*Enemy)(nil)
