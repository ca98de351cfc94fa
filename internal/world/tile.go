// Package world provides the dungeon grid and its procedural generator.
package world

// Tile is the static terrain of a cell.
type Tile rune

const (
	// TileWall represents an impassable wall tile.
	TileWall Tile = '#'
	// TileFloor represents a passable floor tile.
	TileFloor Tile = '.'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

// Symbol is the observable content of a cell: terrain, or whatever occupies it.
// Every cell resolves to exactly one symbol.
type Symbol uint8

const (
	SymbolWall Symbol = iota
	SymbolFloor
	SymbolHero
	SymbolEnemy
	SymbolPotion
	SymbolSword
)

// String returns the symbol name used by tile definitions.
func (s Symbol) String() string {
	switch s {
	case SymbolWall:
		return "wall"
	case SymbolFloor:
		return "floor"
	case SymbolHero:
		return "hero"
	case SymbolEnemy:
		return "enemy"
	case SymbolPotion:
		return "potion"
	case SymbolSword:
		return "sword"
	default:
		return "unknown"
	}
}

// Symbols lists every valid symbol.
var Symbols = []Symbol{SymbolWall, SymbolFloor, SymbolHero, SymbolEnemy, SymbolPotion, SymbolSword}

// Occupant is an entity standing on a cell.
type Occupant uint8

const (
	OccupantNone Occupant = iota
	OccupantHero
	OccupantEnemy
)

// Item is a pickup lying on a cell.
type Item uint8

const (
	ItemNone Item = iota
	ItemPotion
	ItemSword
)

// String returns the item name.
func (i Item) String() string {
	switch i {
	case ItemPotion:
		return "potion"
	case ItemSword:
		return "sword"
	default:
		return "none"
	}
}
