package gamedata

import (
	"errors"
	"fmt"
)

// EnemyPolicy selects how the enemy pass resolves attacks.
type EnemyPolicy string

const (
	// PolicyIndependent lets every enemy attack or step on its own.
	PolicyIndependent EnemyPolicy = "independent"
	// PolicyFirstStrike ends the enemy pass as soon as one enemy hits the hero.
	PolicyFirstStrike EnemyPolicy = "first-strike"
)

// Valid reports whether p names a known policy.
func (p EnemyPolicy) Valid() bool {
	return p == PolicyIndependent || p == PolicyFirstStrike
}

// MapRules controls dungeon generation.
type MapRules struct {
	Width                int  `json:"width"`
	Height               int  `json:"height"`
	MinRooms             int  `json:"minRooms"`
	MaxRooms             int  `json:"maxRooms"`
	MinRoomSize          int  `json:"minRoomSize"`
	MaxRoomSize          int  `json:"maxRoomSize"`
	MinCorridors         int  `json:"minCorridors"`         // Per axis
	MaxCorridors         int  `json:"maxCorridors"`         // Per axis
	MaxPlacementAttempts int  `json:"maxPlacementAttempts"` // Samples before a floor query gives up
	RequireConnected     bool `json:"requireConnected"`
}

// SpawnRules holds the fixed entity counts.
type SpawnRules struct {
	Potions int `json:"potions"`
	Swords  int `json:"swords"`
	Enemies int `json:"enemies"`
}

// HeroRules holds the hero's starting stats.
type HeroRules struct {
	Health    int `json:"health"`
	MaxHealth int `json:"maxHealth"`
	Strength  int `json:"strength"`
}

// EnemyRules holds enemy stats.
type EnemyRules struct {
	Health int `json:"health"`
	Damage int `json:"damage"` // Dealt to the hero per adjacent attack
}

// CombatRules holds hero melee tuning.
type CombatRules struct {
	MeleeDamage int `json:"meleeDamage"` // Multiplied by hero strength
}

// ItemRules holds pickup effects.
type ItemRules struct {
	PotionHeal    int `json:"potionHeal"`
	SwordStrength int `json:"swordStrength"`
}

// Rules is the full set of tuning constants, loaded from rules.json.
type Rules struct {
	Map          MapRules    `json:"map"`
	Spawns       SpawnRules  `json:"spawns"`
	Hero         HeroRules   `json:"hero"`
	Enemy        EnemyRules  `json:"enemy"`
	Combat       CombatRules `json:"combat"`
	Items        ItemRules   `json:"items"`
	EnemyPolicy  EnemyPolicy `json:"enemyPolicy"`
	InitAttempts int         `json:"initAttempts"` // Fresh maps a caller may try before giving up
}

// ErrInvalidRules is returned by Validate for inconsistent rule sets.
var ErrInvalidRules = errors.New("invalid rules")

// LoadRules loads the embedded default rules.
func LoadRules() (Rules, error) {
	rules, err := Load[Rules]("rules.json")
	if err != nil {
		return Rules{}, err
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, err
	}
	return rules, nil
}

// Validate checks ranges that the generator and engine rely on.
func (r Rules) Validate() error {
	m := r.Map
	switch {
	case m.Width < 3 || m.Height < 3:
		return fmt.Errorf("%w: map %dx%d is too small", ErrInvalidRules, m.Width, m.Height)
	case m.MinRooms < 0 || m.MaxRooms < m.MinRooms:
		return fmt.Errorf("%w: room count range [%d,%d]", ErrInvalidRules, m.MinRooms, m.MaxRooms)
	case m.MinRoomSize < 1 || m.MaxRoomSize < m.MinRoomSize:
		return fmt.Errorf("%w: room size range [%d,%d]", ErrInvalidRules, m.MinRoomSize, m.MaxRoomSize)
	case m.MaxRoomSize > m.Width-3 || m.MaxRoomSize > m.Height-3:
		return fmt.Errorf("%w: rooms up to %d do not fit a %dx%d map", ErrInvalidRules, m.MaxRoomSize, m.Width, m.Height)
	case m.MinCorridors < 0 || m.MaxCorridors < m.MinCorridors:
		return fmt.Errorf("%w: corridor range [%d,%d]", ErrInvalidRules, m.MinCorridors, m.MaxCorridors)
	case m.MaxPlacementAttempts < 1:
		return fmt.Errorf("%w: placement attempts must be positive", ErrInvalidRules)
	case r.Hero.MaxHealth < 1 || r.Hero.Health > r.Hero.MaxHealth:
		return fmt.Errorf("%w: hero health %d/%d", ErrInvalidRules, r.Hero.Health, r.Hero.MaxHealth)
	case r.Spawns.Potions < 0 || r.Spawns.Swords < 0 || r.Spawns.Enemies < 0:
		return fmt.Errorf("%w: negative spawn count", ErrInvalidRules)
	case r.Enemy.Health < 1 || r.Enemy.Damage < 0:
		return fmt.Errorf("%w: enemy health %d damage %d", ErrInvalidRules, r.Enemy.Health, r.Enemy.Damage)
	case r.Combat.MeleeDamage < 0:
		return fmt.Errorf("%w: negative melee damage %d", ErrInvalidRules, r.Combat.MeleeDamage)
	case !r.EnemyPolicy.Valid():
		return fmt.Errorf("%w: unknown enemy policy %q", ErrInvalidRules, r.EnemyPolicy)
	}
	return nil
}
