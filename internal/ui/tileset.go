package ui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// ErrMissingTile is returned when a tileset lacks a glyph for some symbol.
var ErrMissingTile = errors.New("tileset is missing a symbol")

// Tile is the resolved glyph and style for one symbol.
type Tile struct {
	Glyph rune
	Style tcell.Style
}

// Tileset maps every cell symbol to how it is drawn.
type Tileset struct {
	tiles map[world.Symbol]Tile
}

// LoadTileset loads the embedded tile definitions.
func LoadTileset() (*Tileset, error) {
	defs, err := gamedata.LoadTiles()
	if err != nil {
		return nil, fmt.Errorf("load tiles: %w", err)
	}
	return NewTileset(defs)
}

// NewTileset resolves tile definitions. Every symbol must be covered.
func NewTileset(defs []gamedata.TileDef) (*Tileset, error) {
	byName := make(map[string]gamedata.TileDef, len(defs))
	for _, def := range defs {
		byName[def.Symbol] = def
	}

	ts := &Tileset{tiles: make(map[world.Symbol]Tile, len(world.Symbols))}
	for _, sym := range world.Symbols {
		def, ok := byName[sym.String()]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingTile, sym)
		}
		if _, err := gamedata.ParseHexColor(def.Color); err != nil {
			return nil, fmt.Errorf("tile %s: %w", sym, err)
		}
		style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(def.TCellColor())
		if sym == world.SymbolHero {
			style = style.Bold(true)
		}
		ts.tiles[sym] = Tile{Glyph: def.GlyphRune(), Style: style}
	}
	return ts, nil
}

// Tile returns how sym is drawn.
func (ts *Tileset) Tile(sym world.Symbol) Tile {
	if t, ok := ts.tiles[sym]; ok {
		return t
	}
	return Tile{Glyph: '?', Style: tcell.StyleDefault}
}
