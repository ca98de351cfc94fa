package gamedata

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLoadRules(t *testing.T) {
	rules, err := LoadRules()
	if err != nil {
		t.Fatalf("Failed to load rules: %v", err)
	}

	checks := []struct {
		name string
		got  int
		want int
	}{
		{"map width", rules.Map.Width, 40},
		{"map height", rules.Map.Height, 24},
		{"min rooms", rules.Map.MinRooms, 5},
		{"max rooms", rules.Map.MaxRooms, 10},
		{"min room size", rules.Map.MinRoomSize, 3},
		{"max room size", rules.Map.MaxRoomSize, 8},
		{"min corridors", rules.Map.MinCorridors, 3},
		{"max corridors", rules.Map.MaxCorridors, 5},
		{"placement attempts", rules.Map.MaxPlacementAttempts, 100},
		{"potions", rules.Spawns.Potions, 10},
		{"swords", rules.Spawns.Swords, 2},
		{"enemies", rules.Spawns.Enemies, 10},
		{"hero health", rules.Hero.Health, 100},
		{"hero max health", rules.Hero.MaxHealth, 100},
		{"hero strength", rules.Hero.Strength, 1},
		{"enemy health", rules.Enemy.Health, 50},
		{"enemy damage", rules.Enemy.Damage, 5},
		{"melee damage", rules.Combat.MeleeDamage, 10},
		{"potion heal", rules.Items.PotionHeal, 20},
		{"sword strength", rules.Items.SwordStrength, 1},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}

	if rules.EnemyPolicy != PolicyIndependent {
		t.Errorf("EnemyPolicy = %q, want %q", rules.EnemyPolicy, PolicyIndependent)
	}
}

func TestRulesValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Rules)
	}{
		{"tiny map", func(r *Rules) { r.Map.Width = 2 }},
		{"inverted room range", func(r *Rules) { r.Map.MinRooms, r.Map.MaxRooms = 6, 5 }},
		{"room larger than map", func(r *Rules) { r.Map.MaxRoomSize = 30 }},
		{"inverted corridor range", func(r *Rules) { r.Map.MinCorridors = 9 }},
		{"no placement attempts", func(r *Rules) { r.Map.MaxPlacementAttempts = 0 }},
		{"overhealed hero", func(r *Rules) { r.Hero.Health = 150 }},
		{"negative enemies", func(r *Rules) { r.Spawns.Enemies = -1 }},
		{"unknown policy", func(r *Rules) { r.EnemyPolicy = "berserk" }},
		{"lifeless enemy", func(r *Rules) { r.Enemy.Health = 0 }},
		{"negative melee damage", func(r *Rules) { r.Combat.MeleeDamage = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules, err := LoadRules()
			if err != nil {
				t.Fatalf("LoadRules() error: %v", err)
			}
			tt.mutate(&rules)
			err = rules.Validate()
			if !errors.Is(err, ErrInvalidRules) {
				t.Errorf("Validate() = %v, want ErrInvalidRules", err)
			}
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	if _, err := Decode[Rules]("broken.json", []byte("{not json")); err == nil {
		t.Error("Decode should fail on malformed JSON")
	}
}

func TestLoadTiles(t *testing.T) {
	tiles, err := LoadTiles()
	if err != nil {
		t.Fatalf("Failed to load tiles: %v", err)
	}

	if len(tiles) != 6 {
		t.Errorf("Expected 6 tiles, got %d", len(tiles))
	}

	expected := map[string]bool{
		"wall": false, "floor": false, "hero": false,
		"enemy": false, "potion": false, "sword": false,
	}
	for _, tile := range tiles {
		if _, ok := expected[tile.Symbol]; ok {
			expected[tile.Symbol] = true
		}
		if _, err := ParseHexColor(tile.Color); err != nil {
			t.Errorf("tile %q has bad color %q: %v", tile.Symbol, tile.Color, err)
		}
	}
	for symbol, found := range expected {
		if !found {
			t.Errorf("Expected tile %q not found", symbol)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#0000FF", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
		{"#GG0000", false},
		{"+12345", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseHexColor(%q) error = %v, want ErrInvalidColor", tt.input, err)
		}
	}

	if got, _ := ParseHexColor("#FF3030"); got != tcell.NewRGBColor(0xFF, 0x30, 0x30) {
		t.Errorf("ParseHexColor(#FF3030) = %v", got)
	}
}

func TestTileDefMethods(t *testing.T) {
	def := TileDef{
		Symbol: "enemy",
		Name:   "Enemy",
		Glyph:  "E",
		Color:  "#FF0000",
	}

	if def.GlyphRune() != 'E' {
		t.Errorf("Expected glyph 'E', got %c", def.GlyphRune())
	}

	if color := def.TCellColor(); color == 0 {
		t.Error("TCellColor returned zero color")
	}

	empty := TileDef{}
	if empty.GlyphRune() != '?' {
		t.Errorf("Expected fallback glyph '?', got %c", empty.GlyphRune())
	}
}
