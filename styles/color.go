package styles

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 32-bit ARGB color value.
type Color uint32

// Colors used by the built-in defaults.
const (
	ColorBlack Color = 0xFF000000
	ColorWhite Color = 0xFFFFFFFF
)

// Hex returns the canonical 8-digit uppercase ARGB rendering, e.g. "FF1A2B3C".
func (c Color) Hex() string {
	return fmt.Sprintf("%08X", uint32(c))
}

// ParseColor converts an ARGB hex string into a Color. 6-digit RGB values
// are accepted and treated as fully opaque. A leading '#' is ignored.
func ParseColor(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	switch len(s) {
	case 6:
		return Color(0xFF000000 | uint32(v)), nil
	case 8:
		return Color(v), nil
	default:
		return 0, fmt.Errorf("invalid color %q: expected 6 or 8 hex digits", s)
	}
}
