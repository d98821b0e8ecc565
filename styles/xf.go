package styles

import (
	"strconv"
	"strings"
)

// Alignment is the cell alignment value object carried by an XF record. The
// zero value is the default alignment: general horizontal, bottom vertical,
// no wrap, no rotation, no indent.
type Alignment struct {
	Horizontal   HAlign
	Vertical     VAlign
	WrapText     bool
	ShrinkToFit  bool
	TextRotation int // degrees, 0..180
	Indent       int
}

// IsDefault reports whether every field has its default value.
func (a Alignment) IsDefault() bool {
	return a == Alignment{}
}

func (a Alignment) key() string {
	var b strings.Builder
	b.WriteString(a.Horizontal.String())
	b.WriteByte('_')
	b.WriteString(a.Vertical.String())
	b.WriteByte('_')
	b.WriteByte(boolKey(a.WrapText))
	b.WriteByte(boolKey(a.ShrinkToFit))
	b.WriteByte('_')
	b.WriteString(strconv.Itoa(a.TextRotation))
	b.WriteByte('_')
	b.WriteString(strconv.Itoa(a.Indent))
	return b.String()
}

// CellFormat is one XF record: references into the component pools and the
// number format registry, the alignment value object, cell protection, and
// the apply flags recording which facets were explicitly requested rather
// than inherited from the master record.
type CellFormat struct {
	FontID    uint32
	FillID    uint32
	BorderID  uint32
	NumFmtID  uint32
	Alignment Alignment
	Locked    bool

	ApplyFont         bool
	ApplyFill         bool
	ApplyBorder       bool
	ApplyAlignment    bool
	ApplyNumberFormat bool
	ApplyProtection   bool
}

// key is the ordered concatenation of every field: ids as decimal, the
// alignment fields individually, booleans as 0/1.
func (xf CellFormat) key() string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(uint64(xf.FontID), 10))
	b.WriteByte('_')
	b.WriteString(strconv.FormatUint(uint64(xf.FillID), 10))
	b.WriteByte('_')
	b.WriteString(strconv.FormatUint(uint64(xf.BorderID), 10))
	b.WriteByte('_')
	b.WriteString(strconv.FormatUint(uint64(xf.NumFmtID), 10))
	b.WriteByte('_')
	b.WriteString(xf.Alignment.key())
	b.WriteByte('_')
	b.WriteByte(boolKey(xf.Locked))
	b.WriteByte(boolKey(xf.ApplyFont))
	b.WriteByte(boolKey(xf.ApplyFill))
	b.WriteByte(boolKey(xf.ApplyBorder))
	b.WriteByte(boolKey(xf.ApplyAlignment))
	b.WriteByte(boolKey(xf.ApplyNumberFormat))
	b.WriteByte(boolKey(xf.ApplyProtection))
	return b.String()
}

// defaultCellFormat is the reserved index 0 XF: all component ids 0, default
// alignment, locked, every apply flag set. The first cellXf mirrors the
// master style by convention.
func defaultCellFormat() CellFormat {
	return CellFormat{
		Locked:            true,
		ApplyFont:         true,
		ApplyFill:         true,
		ApplyBorder:       true,
		ApplyAlignment:    true,
		ApplyNumberFormat: true,
		ApplyProtection:   true,
	}
}
