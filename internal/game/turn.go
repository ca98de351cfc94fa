package game

import (
	"context"
	"slices"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// TurnResult reports what one Apply call did.
type TurnResult struct {
	Accepted bool     // False when the intent was ignored and no turn passed
	Turn     int      // Accepted turns so far
	Phase    Phase    // Phase after the call
	Outcome  Outcome  // Set only on the turn that ended the game
	Notify   bool     // True exactly once, on the turn that ended the game
	Messages []string // What happened this turn, in order
}

// Apply resolves one intent: the hero's action, then the enemy pass, then the
// end-of-game check. Blocked moves, unknown intents and anything received
// after the game ended are ignored without advancing the turn.
func (e *Engine) Apply(ctx context.Context, intent Intent) TurnResult {
	ignored := TurnResult{Turn: e.turn, Phase: e.phase}
	if e.phase.Terminal() {
		return ignored
	}

	var target world.Point
	switch intent {
	case IntentUp, IntentDown, IntentLeft, IntentRight:
		dir, _ := intent.Direction()
		target = e.hero.Pos.Add(dir)
		if !e.IsValidMove(target.X, target.Y) {
			return ignored
		}
	case IntentAttack:
	default:
		return ignored
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.turn")
	defer span.End()
	span.SetAttributes(
		attribute.String("intent", intent.String()),
		attribute.Int("turn", e.turn+1),
	)

	e.phase = PhaseResolving
	e.messages = e.messages[:0]

	if intent == IntentAttack {
		e.attack(span)
	} else {
		e.moveHero(target)
	}
	e.enemyPass(span)
	e.turn++

	outcome := e.evaluate()
	span.SetAttributes(
		attribute.Int("hero.health", e.hero.Health),
		attribute.Int("enemy_count", len(e.enemies)),
		attribute.String("phase", e.phase.String()),
	)

	result := TurnResult{
		Accepted: true,
		Turn:     e.turn,
		Phase:    e.phase,
		Messages: slices.Clone(e.messages),
	}
	if outcome != OutcomeNone {
		result.Outcome = outcome
		result.Notify = true
		e.endGame(ctx, outcome)
	}
	return result
}

// IsValidMove reports whether an entity may step onto (x, y): inside the grid,
// not a wall and not holding an enemy. It never mutates state.
func (e *Engine) IsValidMove(x, y int) bool {
	p := world.Point{X: x, Y: y}
	if !e.grid.InBounds(p) {
		return false
	}
	if !e.grid.IsPassable(p) {
		return false
	}
	return e.grid.OccupantAt(p) != world.OccupantEnemy
}

// moveHero steps the hero onto target, consuming any item there.
func (e *Engine) moveHero(target world.Point) {
	switch e.grid.TakeItem(target) {
	case world.ItemPotion:
		healed := e.hero.Heal(e.rules.Items.PotionHeal)
		e.note("Hero drinks a potion and recovers " + strconv.Itoa(healed))
	case world.ItemSword:
		e.hero.Empower(e.rules.Items.SwordStrength)
		e.note("Hero picks up a sword, strength " + strconv.Itoa(e.hero.Strength))
	}

	e.grid.MoveOccupant(e.hero.Pos, target)
	e.hero.Pos = target
}

// attack hits every enemy orthogonally adjacent to the hero.
func (e *Engine) attack(span trace.Span) {
	hits, kills := 0, 0
	for _, d := range world.Directions {
		p := e.hero.Pos.Add(d)
		idx := e.enemyIndexAt(p)
		if idx < 0 {
			continue
		}

		result := e.resolver.HeroStrike(e.hero, e.enemies[idx])
		e.note(result.Message)
		hits++
		if result.Killed {
			kills++
			e.grid.SetOccupant(p, world.OccupantNone)
			e.enemies = slices.Delete(e.enemies, idx, idx+1)
		}
	}
	if hits == 0 {
		e.note("Hero swings at nothing")
	}
	span.SetAttributes(
		attribute.Int("attack.hits", hits),
		attribute.Int("attack.kills", kills),
		attribute.Int("attack.damage", e.resolver.HeroDamage(e.hero.Strength)),
	)
}

// evaluate updates the phase after a turn and returns the outcome if the game
// just ended.
func (e *Engine) evaluate() Outcome {
	switch {
	case !e.hero.IsAlive():
		e.phase = PhaseDefeat
		return OutcomeDefeat
	case len(e.enemies) == 0:
		e.phase = PhaseVictory
		return OutcomeVictory
	default:
		e.phase = PhaseAwaitingInput
		return OutcomeNone
	}
}

// endGame records the finished game.
func (e *Engine) endGame(ctx context.Context, outcome Outcome) {
	e.note(outcome.Message())

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.end")
	span.SetAttributes(
		attribute.String("outcome", outcome.String()),
		attribute.Int("turns_taken", e.turn),
		attribute.Int("hero.health", e.hero.Health),
		attribute.Int("hero.strength", e.hero.Strength),
		attribute.Int("enemies_remaining", len(e.enemies)),
	)
	span.End()

	e.logger.Info("game over",
		"outcome", outcome.String(),
		"turns", e.turn,
		"hero_health", e.hero.Health,
		"enemies_remaining", len(e.enemies),
	)
}

func (e *Engine) note(msg string) {
	e.messages = append(e.messages, msg)
}
