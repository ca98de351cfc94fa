// Package combat resolves melee exchanges between the hero and enemies.
package combat

import (
	"strconv"

	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
)

// Combatant is the interface for anything that can be hit.
// Both the hero and enemies implement this interface.
type Combatant interface {
	GetName() string
	IsAlive() bool
	GetHealth() int
	GetMaxHealth() int
	TakeDamage(amount int) int // Returns actual damage taken
}

// Attacker is a combatant whose blows scale with strength.
type Attacker interface {
	Combatant
	GetStrength() int
}

// Result contains the outcome of one strike.
type Result struct {
	Damage  int  // Damage rolled before clamping at zero health
	Dealt   int  // Health actually removed
	Killed  bool // Target health reached zero or below
	Message string
}

// Resolver applies melee damage using the configured base values.
type Resolver struct {
	heroBase  int
	enemyBase int
}

// NewResolver creates a resolver from the combat and enemy rules.
func NewResolver(combatRules gamedata.CombatRules, enemyRules gamedata.EnemyRules) *Resolver {
	return &Resolver{
		heroBase:  combatRules.MeleeDamage,
		enemyBase: enemyRules.Damage,
	}
}

// HeroDamage returns what a hero of the given strength deals per hit.
func (r *Resolver) HeroDamage(strength int) int {
	return r.heroBase * strength
}

// EnemyDamage returns what an enemy of the given strength deals per hit.
func (r *Resolver) EnemyDamage(strength int) int {
	return r.enemyBase * strength
}

// HeroStrike resolves the hero hitting target.
func (r *Resolver) HeroStrike(hero Attacker, target Combatant) Result {
	return strike(r.HeroDamage(hero.GetStrength()), hero, target)
}

// EnemyStrike resolves an enemy hitting the hero.
func (r *Resolver) EnemyStrike(enemy Attacker, hero Combatant) Result {
	return strike(r.EnemyDamage(enemy.GetStrength()), enemy, hero)
}

func strike(damage int, attacker, target Combatant) Result {
	if damage < 0 {
		damage = 0
	}
	dealt := target.TakeDamage(damage)
	result := Result{
		Damage:  damage,
		Dealt:   dealt,
		Killed:  !target.IsAlive(),
		Message: attacker.GetName() + " hits " + target.GetName() + " for " + strconv.Itoa(damage),
	}
	if result.Killed {
		result.Message += ", " + target.GetName() + " falls"
	}
	return result
}
