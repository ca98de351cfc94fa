package game

import (
	"fmt"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// place scatters items first, then the hero, then enemies. Each pick marks its
// cell before the next query, so nothing ever lands on an occupied cell.
func (e *Engine) place() error {
	if err := e.placeItems(); err != nil {
		return err
	}
	if err := e.placeHero(); err != nil {
		return err
	}
	return e.placeEnemies()
}

func (e *Engine) placeItems() error {
	batches := []struct {
		item  world.Item
		count int
	}{
		{world.ItemPotion, e.rules.Spawns.Potions},
		{world.ItemSword, e.rules.Spawns.Swords},
	}
	for _, b := range batches {
		for i := 0; i < b.count; i++ {
			p, err := e.gen.RandomFloorPosition(e.grid)
			if err != nil {
				return fmt.Errorf("place %s %d: %w", b.item, i+1, err)
			}
			e.grid.PlaceItem(p, b.item)
		}
	}
	return nil
}

func (e *Engine) placeHero() error {
	p, err := e.gen.RandomFloorPosition(e.grid)
	if err != nil {
		return fmt.Errorf("place hero: %w", err)
	}
	e.hero = entity.NewHero(p, e.rules.Hero)
	e.grid.SetOccupant(p, world.OccupantHero)
	return nil
}

func (e *Engine) placeEnemies() error {
	e.enemies = make([]*entity.Enemy, 0, e.rules.Spawns.Enemies)
	for i := 0; i < e.rules.Spawns.Enemies; i++ {
		p, err := e.gen.RandomFloorPosition(e.grid)
		if err != nil {
			return fmt.Errorf("place enemy %d: %w", i+1, err)
		}
		e.enemies = append(e.enemies, entity.NewEnemy(i+1, p, e.rules.Enemy))
		e.grid.SetOccupant(p, world.OccupantEnemy)
	}
	return nil
}
