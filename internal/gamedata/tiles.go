package gamedata

import "github.com/gdamore/tcell/v2"

// TileDef describes how one cell symbol is drawn.
type TileDef struct {
	Symbol string `json:"symbol"` // Matches world.Symbol.String()
	Name   string `json:"name"`
	Glyph  string `json:"glyph"` // Single character for rendering
	Color  string `json:"color"` // Hex color code (e.g., "#FF3030")
}

// GlyphRune returns the glyph as a rune for rendering.
func (t *TileDef) GlyphRune() rune {
	for _, r := range t.Glyph {
		return r
	}
	return '?'
}

// TCellColor returns the color as a tcell.Color.
func (t *TileDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(t.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// TilesFile represents the structure of tiles.json.
type TilesFile struct {
	Tiles []TileDef `json:"tiles"`
}

// LoadTiles loads tile definitions from the embedded tiles.json file.
func LoadTiles() ([]TileDef, error) {
	file, err := Load[TilesFile]("tiles.json")
	if err != nil {
		return nil, err
	}
	return file.Tiles, nil
}
