package styles

import "strings"

// Edge is one border edge: a line style plus its color.
type Edge struct {
	Style LineStyle
	Color Color
}

func (e Edge) key() string {
	return e.Style.String() + e.Color.Hex()
}

// Border describes all four cell edges plus the diagonal. The diagonal
// carries two direction flags since both diagonals can be drawn at once.
type Border struct {
	Left   Edge
	Right  Edge
	Top    Edge
	Bottom Edge

	Diagonal     Edge
	DiagonalUp   bool
	DiagonalDown bool
}

// DefaultBorder is the reserved index 0 entry of the border pool: no border.
func DefaultBorder() Border {
	return Border{}
}

// Key returns the canonical dedup key: the four edges in left, right, top,
// bottom order, then the diagonal edge and its direction flags.
func (b Border) Key() string {
	var s strings.Builder
	s.WriteString(b.Left.key())
	s.WriteString(b.Right.key())
	s.WriteString(b.Top.key())
	s.WriteString(b.Bottom.key())
	s.WriteString(b.Diagonal.key())
	s.WriteByte(boolKey(b.DiagonalUp))
	s.WriteByte(boolKey(b.DiagonalDown))
	return s.String()
}

// HasEdge reports whether any of the four sides draws a line. The diagonal
// does not count: apply-border semantics only consider the sides.
func (b Border) HasEdge() bool {
	return b.Left.Style != LineStyleNone ||
		b.Right.Style != LineStyleNone ||
		b.Top.Style != LineStyleNone ||
		b.Bottom.Style != LineStyleNone
}
