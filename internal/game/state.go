// Package game runs the dungeon: it places entities on a generated grid and
// resolves one player intent at a time, followed by the enemy pass.
package game

import "github.com/samdwyer/dungeoncrawl/internal/world"

// Phase represents where the engine is in the turn cycle.
type Phase int

const (
	// PhaseAwaitingInput is the idle state between turns.
	PhaseAwaitingInput Phase = iota
	// PhaseResolving is set while a turn is being applied.
	PhaseResolving
	// PhaseVictory means every enemy has been defeated.
	PhaseVictory
	// PhaseDefeat means the hero has died.
	PhaseDefeat
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingInput:
		return "awaiting_input"
	case PhaseResolving:
		return "resolving"
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further intents will be accepted.
func (p Phase) Terminal() bool {
	return p == PhaseVictory || p == PhaseDefeat
}

// Outcome is how a finished game ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "none"
	}
}

// Message returns the banner shown when the game ends.
func (o Outcome) Message() string {
	switch o {
	case OutcomeVictory:
		return "Game over! No more enemies!"
	case OutcomeDefeat:
		return "Game over! Hero died"
	default:
		return ""
	}
}

// Intent is a discrete player request.
type Intent int

const (
	IntentNone Intent = iota
	IntentUp
	IntentDown
	IntentLeft
	IntentRight
	IntentAttack
)

// String returns the intent's event name.
func (i Intent) String() string {
	switch i {
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	case IntentAttack:
		return "attack"
	default:
		return "none"
	}
}

// ParseIntent maps an event name to an intent. Unknown names yield IntentNone.
func ParseIntent(name string) Intent {
	switch name {
	case "up":
		return IntentUp
	case "down":
		return IntentDown
	case "left":
		return IntentLeft
	case "right":
		return IntentRight
	case "attack":
		return IntentAttack
	default:
		return IntentNone
	}
}

// Direction returns the step for a movement intent.
func (i Intent) Direction() (world.Direction, bool) {
	switch i {
	case IntentUp:
		return world.North, true
	case IntentDown:
		return world.South, true
	case IntentLeft:
		return world.West, true
	case IntentRight:
		return world.East, true
	default:
		return world.Direction{}, false
	}
}
