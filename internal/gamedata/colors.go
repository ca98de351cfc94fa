package gamedata

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ErrInvalidColor is returned for color strings that are not six hex digits.
var ErrInvalidColor = errors.New("invalid hex color")

// ParseHexColor converts "#RRGGBB" (the # is optional) to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return tcell.ColorDefault, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}

	rgb, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	return tcell.NewHexColor(int32(rgb)), nil
}
