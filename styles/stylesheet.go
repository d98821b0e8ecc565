package styles

import "go.uber.org/zap"

// Style is the structured per-cell formatting description clients build and
// the reconstructor returns.
type Style struct {
	Font         Font
	Fill         Fill
	Border       Border
	NumberFormat NumberFormat
	Alignment    Alignment
	Locked       bool // cell protection; the format default is locked
}

// DefaultStyle is the style equivalent of every pool's reserved index 0
// entry.
func DefaultStyle() Style {
	return Style{
		Font:   DefaultFont(),
		Fill:   DefaultFill(),
		Border: DefaultBorder(),
		Locked: true,
	}
}

// StyleSheet owns all style pools of one workbook: fonts, fills, borders,
// the number format registry and the cell-format (XF) pool, plus the
// memoizing resolve cache. Pools grow monotonically for the lifetime of the
// owning workbook; indices are only meaningful within this instance.
//
// A StyleSheet is not safe for concurrent use. The owning workbook must
// serialize access; no internal locking is provided.
type StyleSheet struct {
	fonts   *pool[Font]
	fills   *pool[Fill]
	borders *pool[Border]
	numfmts *NumberFormatRegistry
	xfs     *pool[CellFormat]

	// resolved caches reconstructed styles by XF index. Pools are
	// append-only, so entries never go stale; the cache is cleared only when
	// the whole sheet is rebuilt from a parsed package.
	resolved map[uint32]Style

	log *zap.Logger
}

// NewStyleSheet creates an empty style sheet with the reserved defaults at
// index 0 of every pool.
func NewStyleSheet(log *zap.Logger) *StyleSheet {
	if log == nil {
		log = zap.NewNop()
	}
	return &StyleSheet{
		fonts:    newPool(Font.Key, DefaultFont()),
		fills:    newPool(Fill.Key, DefaultFill()),
		borders:  newPool(Border.Key, DefaultBorder()),
		numfmts:  newNumberFormatRegistry(),
		xfs:      newPool(CellFormat.key, defaultCellFormat()),
		resolved: make(map[uint32]Style),
		log:      log.Named("styles"),
	}
}

// RegisterFont returns the font pool index for f, registering it when new.
func (ss *StyleSheet) RegisterFont(f Font) uint32 {
	return ss.fonts.register(f)
}

// RegisterFill returns the fill pool index for f, registering it when new.
func (ss *StyleSheet) RegisterFill(f Fill) uint32 {
	return ss.fills.register(f)
}

// RegisterBorder returns the border pool index for b, registering it when new.
func (ss *StyleSheet) RegisterBorder(b Border) uint32 {
	return ss.borders.register(b)
}

// RegisterNumberFormat returns the format id for def: 0 for General (and for
// definitions failing validation), a reserved id for built-in codes, a
// monotonically allocated id from 164 for custom codes.
func (ss *StyleSheet) RegisterNumberFormat(def NumberFormat) uint32 {
	return ss.numfmts.Register(def)
}

// RegisterCellFormat is the composite per-cell entry point: it registers
// every component of style into its pool, derives the apply flags against
// the defaults, registers the combined XF record and returns its index.
// Structurally equal styles collapse onto the same index.
func (ss *StyleSheet) RegisterCellFormat(style Style) uint32 {
	fontID := ss.fonts.register(style.Font)
	fillID := ss.fills.register(style.Fill)
	borderID := ss.borders.register(style.Border)
	numFmtID := ss.numfmts.Register(style.NumberFormat)

	xf := CellFormat{
		FontID:    fontID,
		FillID:    fillID,
		BorderID:  borderID,
		NumFmtID:  numFmtID,
		Alignment: style.Alignment,
		Locked:    style.Locked,

		ApplyFont:         fontID != 0,
		ApplyFill:         style.Fill.Pattern != PatternTypeNone,
		ApplyBorder:       style.Border.HasEdge(),
		ApplyAlignment:    !style.Alignment.IsDefault(),
		ApplyNumberFormat: numFmtID != 0,
		// "Locked" is the format default, so only the unlocked case is an
		// explicit request.
		ApplyProtection: !style.Locked,
	}

	before := ss.xfs.size()
	idx := ss.xfs.register(xf)
	if ss.xfs.size() != before {
		ss.log.Debug("cell format registered",
			zap.Uint32("xf", idx),
			zap.Uint32("font", fontID),
			zap.Uint32("fill", fillID),
			zap.Uint32("border", borderID),
			zap.Uint32("numFmt", numFmtID))
	}
	return idx
}

// ResolveStyle rebuilds the structured style stored at the given XF index.
// Out-of-range indices yield the default style; resolution never fails.
// Results are memoized, so repeated lookups are O(1) after the first.
func (ss *StyleSheet) ResolveStyle(index uint32) Style {
	if s, ok := ss.resolved[index]; ok {
		return s
	}
	xf, ok := ss.xfs.at(index)
	if !ok {
		return DefaultStyle()
	}

	s := DefaultStyle()
	if f, ok := ss.fonts.at(xf.FontID); ok {
		s.Font = f
	}
	if f, ok := ss.fills.at(xf.FillID); ok {
		s.Fill = f
	}
	if b, ok := ss.borders.at(xf.BorderID); ok {
		s.Border = b
	}
	s.NumberFormat = ss.numfmts.Definition(xf.NumFmtID)
	s.Alignment = xf.Alignment
	s.Locked = xf.Locked

	ss.resolved[index] = s
	return s
}

// Counts of registered entries, mostly for dumps and tests.

func (ss *StyleSheet) FontCount() int       { return ss.fonts.size() }
func (ss *StyleSheet) FillCount() int       { return ss.fills.size() }
func (ss *StyleSheet) BorderCount() int     { return ss.borders.size() }
func (ss *StyleSheet) CellFormatCount() int { return ss.xfs.size() }

// CustomFormats returns the custom number formats in allocation order.
func (ss *StyleSheet) CustomFormats() []CustomFormat {
	return ss.numfmts.Custom()
}

// CellFormats returns the registered XF records in registration order.
// Callers must not mutate the returned slice.
func (ss *StyleSheet) CellFormats() []CellFormat {
	return ss.xfs.all()
}
