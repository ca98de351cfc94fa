// Package gamedata holds the embedded rule and tileset definitions for the
// dungeon crawler, plus the helpers that decode them.
package gamedata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
