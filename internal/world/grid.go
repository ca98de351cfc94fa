package world

// Grid is the dungeon map. Terrain is stored densely; entities and items are
// kept in sparse indexes keyed by coordinate so that an item can lie under an
// enemy without either being lost.
type Grid struct {
	Width  int
	Height int
	Tiles  [][]Tile
	Rooms  []Room

	occupants map[Point]Occupant
	items     map[Point]Item
}

// NewGrid creates a grid filled with walls.
func NewGrid(width, height int) *Grid {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = TileWall
		}
	}

	return &Grid{
		Width:     width,
		Height:    height,
		Tiles:     tiles,
		Rooms:     make([]Room, 0),
		occupants: make(map[Point]Occupant),
		items:     make(map[Point]Item),
	}
}

// InBounds reports whether p lies on the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// GetTile returns the terrain at p. Out-of-bounds reads as wall.
func (g *Grid) GetTile(p Point) Tile {
	if !g.InBounds(p) {
		return TileWall
	}
	return g.Tiles[p.Y][p.X]
}

// SetTile sets the terrain at p. Out-of-bounds writes are ignored.
func (g *Grid) SetTile(p Point, t Tile) {
	if g.InBounds(p) {
		g.Tiles[p.Y][p.X] = t
	}
}

// IsPassable returns true if p is in bounds and its terrain can be walked on.
func (g *Grid) IsPassable(p Point) bool {
	return g.GetTile(p).IsPassable()
}

// OccupantAt returns the entity standing on p.
func (g *Grid) OccupantAt(p Point) Occupant {
	return g.occupants[p]
}

// SetOccupant marks p as occupied by o. OccupantNone clears the cell.
func (g *Grid) SetOccupant(p Point, o Occupant) {
	if o == OccupantNone {
		delete(g.occupants, p)
		return
	}
	g.occupants[p] = o
}

// MoveOccupant moves whatever stands on from to to.
func (g *Grid) MoveOccupant(from, to Point) {
	o := g.occupants[from]
	delete(g.occupants, from)
	g.SetOccupant(to, o)
}

// ItemAt returns the item lying on p.
func (g *Grid) ItemAt(p Point) Item {
	return g.items[p]
}

// PlaceItem drops an item on p.
func (g *Grid) PlaceItem(p Point, it Item) {
	if it == ItemNone {
		delete(g.items, p)
		return
	}
	g.items[p] = it
}

// TakeItem removes and returns the item on p. Consumed items never come back.
func (g *Grid) TakeItem(p Point) Item {
	it := g.items[p]
	delete(g.items, p)
	return it
}

// IsFreeFloor reports whether p is floor with nothing on it.
func (g *Grid) IsFreeFloor(p Point) bool {
	if !g.IsPassable(p) {
		return false
	}
	_, occupied := g.occupants[p]
	_, hasItem := g.items[p]
	return !occupied && !hasItem
}

// SymbolAt resolves the observable symbol of p: entity, then item, then terrain.
func (g *Grid) SymbolAt(p Point) Symbol {
	switch g.occupants[p] {
	case OccupantHero:
		return SymbolHero
	case OccupantEnemy:
		return SymbolEnemy
	}
	switch g.items[p] {
	case ItemPotion:
		return SymbolPotion
	case ItemSword:
		return SymbolSword
	}
	if g.GetTile(p) == TileFloor {
		return SymbolFloor
	}
	return SymbolWall
}

// Symbols returns a fresh row-major copy of every cell's symbol.
func (g *Grid) Symbols() [][]Symbol {
	out := make([][]Symbol, g.Height)
	for y := range out {
		out[y] = make([]Symbol, g.Width)
		for x := range out[y] {
			out[y][x] = g.SymbolAt(Point{X: x, Y: y})
		}
	}
	return out
}

// CountSymbols tallies the observable symbols across the grid.
func (g *Grid) CountSymbols() map[Symbol]int {
	counts := make(map[Symbol]int, len(Symbols))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			counts[g.SymbolAt(Point{X: x, Y: y})]++
		}
	}
	return counts
}

// FloorCount returns the number of floor terrain cells.
func (g *Grid) FloorCount() int {
	n := 0
	for y := range g.Tiles {
		for _, t := range g.Tiles[y] {
			if t == TileFloor {
				n++
			}
		}
	}
	return n
}
