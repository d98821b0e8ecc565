package styles

import (
	"strconv"
	"strings"
)

// Font describes one registered font. Fonts are immutable once registered;
// identity for dedup purposes is the canonical Key.
type Font struct {
	Name          string
	Size          int // points
	Color         Color
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
}

// DefaultFont is the reserved index 0 entry of the font pool.
func DefaultFont() Font {
	return Font{Name: "Calibri", Size: 11, Color: ColorBlack}
}

// Key returns the canonical dedup key: every dedup-significant field in
// fixed order, booleans encoded as 0/1.
func (f Font) Key() string {
	var b strings.Builder
	b.WriteString(f.Name)
	b.WriteByte('_')
	b.WriteString(strconv.Itoa(f.Size))
	b.WriteByte('_')
	b.WriteString(f.Color.Hex())
	b.WriteByte('_')
	b.WriteByte(boolKey(f.Bold))
	b.WriteByte(boolKey(f.Italic))
	b.WriteByte(boolKey(f.Underline))
	b.WriteByte(boolKey(f.Strikethrough))
	return b.String()
}

func boolKey(v bool) byte {
	if v {
		return '1'
	}
	return '0'
}
