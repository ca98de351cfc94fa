// Package entity provides the hero and the enemies that roam the dungeon.
package entity

import (
	"github.com/samdwyer/dungeoncrawl/internal/combat"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Hero is the player-controlled character.
type Hero struct {
	Pos       world.Point
	Health    int
	MaxHealth int
	Strength  int
}

// NewHero creates a hero at pos with the starting stats from rules.
func NewHero(pos world.Point, rules gamedata.HeroRules) *Hero {
	return &Hero{
		Pos:       pos,
		Health:    rules.Health,
		MaxHealth: rules.MaxHealth,
		Strength:  rules.Strength,
	}
}

// Empower raises strength by amount.
func (h *Hero) Empower(amount int) {
	h.Strength += amount
}

// GetName returns the hero's display name.
func (h *Hero) GetName() string { return "Hero" }

// IsAlive returns true if the hero has health remaining.
func (h *Hero) IsAlive() bool { return h.Health > 0 }

// GetHealth returns current health.
func (h *Hero) GetHealth() int { return h.Health }

// GetMaxHealth returns the health cap.
func (h *Hero) GetMaxHealth() int { return h.MaxHealth }

// GetStrength returns the melee multiplier.
func (h *Hero) GetStrength() int { return h.Strength }

// TakeDamage reduces health, never below zero, and returns actual damage taken.
func (h *Hero) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > h.Health {
		actual = h.Health
	}
	h.Health -= actual
	return actual
}

// Heal restores health up to MaxHealth and returns actual amount healed.
func (h *Hero) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if h.Health+actual > h.MaxHealth {
		actual = h.MaxHealth - h.Health
	}
	if actual < 0 {
		actual = 0
	}
	h.Health += actual
	return actual
}

var _ combat.Attacker = (*Hero)(nil)
