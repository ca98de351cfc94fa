package game

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func testConfig(t *testing.T, seed int64) Config {
	t.Helper()
	cfg, err := DefaultConfig()
	if err != nil {
		t.Fatalf("DefaultConfig() error: %v", err)
	}
	cfg.Seed = seed
	cfg.Logger = quietLogger
	return cfg
}

// engineFromLayout builds an engine on a hand-drawn map:
// '#' wall, '.' floor, '@' hero, 'E' enemy, '!' potion, '/' sword.
func engineFromLayout(t *testing.T, layout []string, mutate func(r *gamedata.Rules)) *Engine {
	t.Helper()
	cfg := testConfig(t, 1)
	if mutate != nil {
		mutate(&cfg.Rules)
	}
	e := newEngine(cfg)

	g := world.NewGrid(len(layout[0]), len(layout))
	for y, row := range layout {
		for x, ch := range row {
			p := world.Point{X: x, Y: y}
			if ch != '#' {
				g.SetTile(p, world.TileFloor)
			}
			switch ch {
			case '@':
				e.hero = entity.NewHero(p, cfg.Rules.Hero)
				g.SetOccupant(p, world.OccupantHero)
			case 'E':
				e.enemies = append(e.enemies, entity.NewEnemy(len(e.enemies)+1, p, cfg.Rules.Enemy))
				g.SetOccupant(p, world.OccupantEnemy)
			case '!':
				g.PlaceItem(p, world.ItemPotion)
			case '/':
				g.PlaceItem(p, world.ItemSword)
			}
		}
	}
	if e.hero == nil {
		t.Fatal("layout has no hero")
	}
	e.grid = g
	return e
}

// checkOccupancy verifies that the hero and enemy cells are exactly the
// entity positions, with no two entities sharing a cell.
func checkOccupancy(t *testing.T, e *Engine) {
	t.Helper()
	want := map[world.Point]world.Symbol{e.hero.Pos: world.SymbolHero}
	for _, enemy := range e.enemies {
		if _, dup := want[enemy.Pos]; dup {
			t.Fatalf("two entities share %+v", enemy.Pos)
		}
		want[enemy.Pos] = world.SymbolEnemy
	}

	for y := 0; y < e.grid.Height; y++ {
		for x := 0; x < e.grid.Width; x++ {
			p := world.Point{X: x, Y: y}
			got := e.grid.SymbolAt(p)
			isEntity := got == world.SymbolHero || got == world.SymbolEnemy
			if w, ok := want[p]; ok {
				if got != w {
					t.Fatalf("cell %+v shows %v, want %v", p, got, w)
				}
			} else if isEntity {
				t.Fatalf("cell %+v shows %v with no entity there", p, got)
			}
		}
	}
}

func TestNewPlacesEntities(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		e, err := New(context.Background(), testConfig(t, seed))
		if err != nil {
			t.Fatalf("seed %d: New() error: %v", seed, err)
		}

		counts := e.grid.CountSymbols()
		want := map[world.Symbol]int{
			world.SymbolPotion: 10,
			world.SymbolSword:  2,
			world.SymbolHero:   1,
			world.SymbolEnemy:  10,
		}
		for s, n := range want {
			if counts[s] != n {
				t.Errorf("seed %d: %d %v cells, want %d", seed, counts[s], s, n)
			}
		}

		if e.Phase() != PhaseAwaitingInput {
			t.Errorf("seed %d: Phase() = %v, want awaiting_input", seed, e.Phase())
		}
		if e.hero.Health != 100 || e.hero.Strength != 1 {
			t.Errorf("seed %d: hero starts at %+v", seed, e.hero)
		}
		checkOccupancy(t, e)
	}
}

func TestNewReproducible(t *testing.T) {
	e1, err := New(context.Background(), testConfig(t, 99))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	e2, err := New(context.Background(), testConfig(t, 99))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	s1, s2 := e1.Snapshot(), e2.Snapshot()
	if s1.Hero != s2.Hero {
		t.Errorf("hero differs: %+v != %+v", s1.Hero, s2.Hero)
	}
	for y := range s1.Cells {
		for x := range s1.Cells[y] {
			if s1.Cells[y][x] != s2.Cells[y][x] {
				t.Fatalf("cell (%d,%d) differs", x, y)
			}
		}
	}
}

func TestNewFailsWithoutFloor(t *testing.T) {
	cfg := testConfig(t, 3)
	cfg.Rules.Map.MinRooms, cfg.Rules.Map.MaxRooms = 0, 0
	cfg.Rules.Map.MinCorridors, cfg.Rules.Map.MaxCorridors = 0, 0

	_, err := New(context.Background(), cfg)
	if !errors.Is(err, world.ErrNoValidPosition) {
		t.Errorf("New() on solid rock = %v, want ErrNoValidPosition", err)
	}
}

func TestNewRejectsInvalidRules(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero rules", Config{Seed: 1, Logger: quietLogger}},
		{"lifeless enemies", func() Config {
			cfg := testConfig(t, 1)
			cfg.Rules.Enemy.Health = 0
			return cfg
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(context.Background(), tt.cfg)
			if !errors.Is(err, gamedata.ErrInvalidRules) {
				t.Errorf("New() error = %v, want ErrInvalidRules", err)
			}
			if e != nil {
				t.Error("New() returned an engine for invalid rules")
			}
		})
	}
}

func TestPlaceFailsOnCrampedGrid(t *testing.T) {
	e := newEngine(testConfig(t, 5))
	e.grid = world.NewGrid(6, 3)
	for x := 1; x <= 3; x++ {
		e.grid.SetTile(world.Point{X: x, Y: 1}, world.TileFloor)
	}

	err := e.place()
	if !errors.Is(err, world.ErrNoValidPosition) {
		t.Errorf("place() = %v, want ErrNoValidPosition", err)
	}
}

func TestInvariantsHoldOverRandomPlay(t *testing.T) {
	intents := []Intent{IntentUp, IntentDown, IntentLeft, IntentRight, IntentAttack}

	for seed := int64(1); seed <= 5; seed++ {
		e, err := New(context.Background(), testConfig(t, seed))
		if err != nil {
			t.Fatalf("seed %d: New() error: %v", seed, err)
		}
		rng := rand.New(rand.NewSource(seed))
		notifications := 0

		for i := 0; i < 500; i++ {
			before := e.Turn()
			result := e.Apply(context.Background(), intents[rng.Intn(len(intents))])
			checkOccupancy(t, e)

			if result.Accepted && result.Turn != before+1 {
				t.Fatalf("seed %d: accepted turn went %d -> %d", seed, before, result.Turn)
			}
			if !result.Accepted && result.Turn != before {
				t.Fatalf("seed %d: ignored intent advanced the turn", seed)
			}
			if h := e.hero.Health; h < 0 || h > 100 {
				t.Fatalf("seed %d: hero health %d out of range", seed, h)
			}
			if result.Notify {
				notifications++
			}
		}

		if e.Phase().Terminal() && notifications != 1 {
			t.Errorf("seed %d: %d notifications, want exactly 1", seed, notifications)
		}
		if !e.Phase().Terminal() && notifications != 0 {
			t.Errorf("seed %d: notified while still running", seed)
		}
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	e := engineFromLayout(t, []string{
		"#####",
		"#@.E#",
		"#####",
	}, nil)

	snap := e.Snapshot()
	snap.Cells[1][1] = world.SymbolWall
	snap.Enemies[0].Health = 1

	if e.grid.SymbolAt(world.Point{X: 1, Y: 1}) != world.SymbolHero {
		t.Error("editing snapshot cells changed the grid")
	}
	if e.enemies[0].Health != 50 {
		t.Error("editing snapshot enemies changed the engine")
	}

	enemy, ok := snap.EnemyAt(world.Point{X: 3, Y: 1})
	if !ok || enemy.ID != 1 {
		t.Errorf("EnemyAt() = %+v, %v", enemy, ok)
	}
	if snap.Width != 5 || snap.Height != 3 {
		t.Errorf("snapshot size %dx%d", snap.Width, snap.Height)
	}
}
