package game

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// enemyPass gives every live enemy one action. An enemy next to the hero
// attacks; any other enemy tries a single step in a random direction and
// stays put if that cell is blocked. Under PolicyFirstStrike the first hit
// ends the pass for everyone.
func (e *Engine) enemyPass(span trace.Span) {
	attacks, moves := 0, 0
	defer func() {
		span.SetAttributes(
			attribute.Int("enemy.attacks", attacks),
			attribute.Int("enemy.moves", moves),
		)
	}()

	for _, enemy := range e.enemies {
		if enemy.Pos.Adjacent(e.hero.Pos) {
			result := e.resolver.EnemyStrike(enemy, e.hero)
			e.note(result.Message)
			attacks++
			if e.rules.EnemyPolicy == gamedata.PolicyFirstStrike {
				return
			}
			continue
		}

		target := enemy.Pos.Add(world.Directions[e.rng.Intn(len(world.Directions))])
		if !e.enemyCanEnter(target) {
			continue
		}
		e.grid.MoveOccupant(enemy.Pos, target)
		enemy.Pos = target
		moves++
	}
}

// enemyCanEnter is IsValidMove without the hero's cell.
func (e *Engine) enemyCanEnter(p world.Point) bool {
	return e.IsValidMove(p.X, p.Y) && p != e.hero.Pos
}
