package entity

import (
	"testing"

	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

var heroRules = gamedata.HeroRules{Health: 100, MaxHealth: 100, Strength: 1}

func TestNewHero(t *testing.T) {
	h := NewHero(world.Point{X: 3, Y: 4}, heroRules)
	if h.Health != 100 || h.MaxHealth != 100 || h.Strength != 1 {
		t.Errorf("NewHero() = %+v, want 100/100 health and strength 1", h)
	}
	if h.Pos != (world.Point{X: 3, Y: 4}) {
		t.Errorf("NewHero().Pos = %+v", h.Pos)
	}
}

func TestHeroHealClamp(t *testing.T) {
	tests := []struct {
		start, heal, want, healed int
	}{
		{95, 20, 100, 5},
		{50, 20, 70, 20},
		{100, 20, 100, 0},
		{50, -5, 50, 0},
	}
	for _, tt := range tests {
		h := NewHero(world.Point{}, heroRules)
		h.Health = tt.start
		got := h.Heal(tt.heal)
		if h.Health != tt.want || got != tt.healed {
			t.Errorf("Heal(%d) from %d: health %d healed %d, want %d and %d",
				tt.heal, tt.start, h.Health, got, tt.want, tt.healed)
		}
	}
}

func TestHeroTakeDamage(t *testing.T) {
	h := NewHero(world.Point{}, heroRules)
	h.Health = 5
	if got := h.TakeDamage(5); got != 5 {
		t.Errorf("TakeDamage(5) = %d, want 5", got)
	}
	if h.IsAlive() {
		t.Error("hero at 0 health should be dead")
	}
	if got := h.TakeDamage(5); got != 0 || h.Health != 0 {
		t.Errorf("TakeDamage past zero: dealt %d, health %d", got, h.Health)
	}
}

func TestHeroEmpower(t *testing.T) {
	h := NewHero(world.Point{}, heroRules)
	h.Empower(1)
	h.Empower(1)
	if h.Strength != 3 {
		t.Errorf("Strength after two swords = %d, want 3", h.Strength)
	}
}

func TestEnemy(t *testing.T) {
	e := NewEnemy(4, world.Point{X: 1, Y: 1}, gamedata.EnemyRules{Health: 50, Damage: 5})
	if e.GetName() != "Enemy 4" {
		t.Errorf("GetName() = %q", e.GetName())
	}
	if e.Health != 50 || e.Strength != 1 {
		t.Errorf("NewEnemy() = %+v", e)
	}
	e.TakeDamage(30)
	if !e.IsAlive() || e.Health != 20 {
		t.Errorf("after 30 damage: health %d alive %v", e.Health, e.IsAlive())
	}
	e.TakeDamage(30)
	if e.IsAlive() {
		t.Error("enemy should be dead after 60 damage")
	}
}
