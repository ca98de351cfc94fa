package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
)

// maxConnectAttempts bounds regeneration when connectivity is required.
const maxConnectAttempts = 10

var (
	// ErrNoValidPosition means floor sampling gave up: the grid has too few
	// free floor cells for what is being placed on it.
	ErrNoValidPosition = errors.New("could not find valid floor position")
	// ErrDisconnected means no connected map was produced within the attempt budget.
	ErrDisconnected = errors.New("could not generate a connected map")
)

// Generator carves grids out of solid rock using random rooms and
// full-span corridors.
type Generator struct {
	rules gamedata.MapRules
	rng   *rand.Rand
}

// NewGenerator creates a generator. The rng drives every random choice, so a
// seeded rng reproduces the same maps.
func NewGenerator(rules gamedata.MapRules, rng *rand.Rand) *Generator {
	return &Generator{rules: rules, rng: rng}
}

// Generate produces a new grid. When the rules require connectivity, maps
// whose floor is split into pockets are discarded and regenerated.
func (gen *Generator) Generate(ctx context.Context) (*Grid, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	attempts := 1
	if gen.rules.RequireConnected {
		attempts = maxConnectAttempts
	}

	for i := 1; i <= attempts; i++ {
		g, corridors := gen.carve()
		if gen.rules.RequireConnected && !IsConnected(g) {
			continue
		}

		span.SetAttributes(
			attribute.Int("dungeon.width", g.Width),
			attribute.Int("dungeon.height", g.Height),
			attribute.Int("dungeon.room_count", len(g.Rooms)),
			attribute.Int("dungeon.corridor_count", len(corridors)),
			attribute.Int("dungeon.floor_tiles", g.FloorCount()),
			attribute.Int("dungeon.attempts", i),
			attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
		)
		return g, nil
	}

	span.SetAttributes(attribute.Bool("failed", true))
	return nil, fmt.Errorf("%w after %d attempts", ErrDisconnected, attempts)
}

// carve runs one pass of the algorithm: walls, rooms, corridors.
func (gen *Generator) carve() (*Grid, []Corridor) {
	g := NewGrid(gen.rules.Width, gen.rules.Height)

	roomCount := gen.between(gen.rules.MinRooms, gen.rules.MaxRooms)
	for i := 0; i < roomCount; i++ {
		w := gen.between(gen.rules.MinRoomSize, gen.rules.MaxRoomSize)
		h := gen.between(gen.rules.MinRoomSize, gen.rules.MaxRoomSize)
		room := Room{
			X:      1 + gen.rng.Intn(g.Width-w-2),
			Y:      1 + gen.rng.Intn(g.Height-h-2),
			Width:  w,
			Height: h,
		}
		g.Rooms = append(g.Rooms, room)
		carveRoom(g, room)
	}

	var corridors []Corridor
	hCount := gen.between(gen.rules.MinCorridors, gen.rules.MaxCorridors)
	for i := 0; i < hCount; i++ {
		c := Corridor{Horizontal: true, Offset: 1 + gen.rng.Intn(g.Height-2)}
		carveCorridor(g, c)
		corridors = append(corridors, c)
	}
	vCount := gen.between(gen.rules.MinCorridors, gen.rules.MaxCorridors)
	for i := 0; i < vCount; i++ {
		c := Corridor{Horizontal: false, Offset: 1 + gen.rng.Intn(g.Width-2)}
		carveCorridor(g, c)
		corridors = append(corridors, c)
	}

	return g, corridors
}

// between returns a uniform int in [lo, hi].
func (gen *Generator) between(lo, hi int) int {
	return lo + gen.rng.Intn(hi-lo+1)
}

// RandomFloorPosition samples cells uniformly until it finds free floor.
// It gives up after the configured number of samples.
func (gen *Generator) RandomFloorPosition(g *Grid) (Point, error) {
	for i := 0; i < gen.rules.MaxPlacementAttempts; i++ {
		p := Point{X: gen.rng.Intn(g.Width), Y: gen.rng.Intn(g.Height)}
		if g.IsFreeFloor(p) {
			return p, nil
		}
	}
	return Point{}, fmt.Errorf("%w after %d attempts; ensure the map has enough floor tiles",
		ErrNoValidPosition, gen.rules.MaxPlacementAttempts)
}

// carveRoom sets all tiles within the room to floor.
func carveRoom(g *Grid, room Room) {
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			g.SetTile(Point{X: x, Y: y}, TileFloor)
		}
	}
}

// carveCorridor floors an entire row or column, border included.
func carveCorridor(g *Grid, c Corridor) {
	if c.Horizontal {
		for x := 0; x < g.Width; x++ {
			g.SetTile(Point{X: x, Y: c.Offset}, TileFloor)
		}
		return
	}
	for y := 0; y < g.Height; y++ {
		g.SetTile(Point{X: c.Offset, Y: y}, TileFloor)
	}
}

// IsConnected reports whether every floor tile is reachable from every other
// through orthogonal floor steps. A grid with no floor counts as connected.
func IsConnected(g *Grid) bool {
	var start Point
	found := false
	for y := 0; y < g.Height && !found; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Tiles[y][x] == TileFloor {
				start = Point{X: x, Y: y}
				found = true
				break
			}
		}
	}
	if !found {
		return true
	}

	visited := mapset.New[Point]()
	queue := []Point{start}
	visited.Put(start)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, d := range Directions {
			next := current.Add(d)
			if visited.Has(next) || !g.IsPassable(next) {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}

	return visited.Size() == g.FloorCount()
}
