package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/samdwyer/dungeoncrawl/internal/game"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

const (
	healthBarWidth = 20
	maxMessages    = 3
	controlsHint   = "WASD/arrows move  space attack  q quit"
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	tiles  *Tileset
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, tiles *Tileset) *Renderer {
	return &Renderer{screen: screen, tiles: tiles}
}

// Render draws the grid, the HUD below it and, once the game is over, the
// outcome banner.
func (r *Renderer) Render(snap game.Snapshot) {
	r.screen.Clear()

	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			sym := snap.Cells[y][x]
			tile := r.tiles.Tile(sym)
			style := tile.Style
			if sym == world.SymbolEnemy {
				if enemy, ok := snap.EnemyAt(world.Point{X: x, Y: y}); ok && enemy.Health*2 < enemy.MaxHealth {
					style = style.Foreground(tcell.ColorMaroon)
				}
			}
			r.screen.SetContent(x, y, tile.Glyph, style)
		}
	}

	r.drawHUD(snap)

	if snap.Outcome != game.OutcomeNone {
		r.drawBanner(snap)
	}

	r.screen.Show()
}

// drawHUD renders the status line, hero health bar and recent messages.
func (r *Renderer) drawHUD(snap game.Snapshot) {
	y := snap.Height
	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gray := tcell.StyleDefault.Foreground(tcell.ColorGray)

	status := fmt.Sprintf("HP %d/%d  STR %d  Enemies %d  Turn %d",
		snap.Hero.Health, snap.Hero.MaxHealth, snap.Hero.Strength, len(snap.Enemies), snap.Turn)
	r.drawText(0, y, status, white)

	barStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	if snap.Hero.Health*4 < snap.Hero.MaxHealth {
		barStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	}
	r.drawText(0, y+1, HealthBar(snap.Hero.Health, snap.Hero.MaxHealth, healthBarWidth), barStyle)

	messages := snap.Messages
	if len(messages) > maxMessages {
		messages = messages[len(messages)-maxMessages:]
	}
	for i, msg := range messages {
		r.drawText(0, y+2+i, msg, gray)
	}

	r.drawText(0, y+2+maxMessages, controlsHint, gray)
}

// drawBanner centers the outcome message over the map.
func (r *Renderer) drawBanner(snap game.Snapshot) {
	msg := " " + snap.Outcome.Message() + " "
	style := tcell.StyleDefault.Background(tcell.ColorDarkRed).Foreground(tcell.ColorWhite).Bold(true)
	if snap.Outcome == game.OutcomeVictory {
		style = style.Background(tcell.ColorDarkGreen)
	}
	x := (snap.Width - runewidth.StringWidth(msg)) / 2
	if x < 0 {
		x = 0
	}
	r.drawText(x, snap.Height/2, msg, style)
}

// drawText writes text starting at (x, y) and returns the columns used.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, style)
		col += runewidth.RuneWidth(ch)
	}
	return col - x
}

// HealthBar renders health as a fixed-width bar such as "[#####-----]".
func HealthBar(health, maxHealth, width int) string {
	if maxHealth <= 0 || width <= 0 {
		return "[]"
	}
	if health < 0 {
		health = 0
	}
	filled := health * width / maxHealth
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
