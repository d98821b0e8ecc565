package styles

import (
	"strconv"

	"github.com/beevik/etree"
)

// Namespace of the spreadsheetml styleSheet part.
const styleSheetNS = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"

// EmitStylesTree renders every pool into the styleSheet part as an XML node
// tree, in fixed part order: numFmts (custom entries only), fonts, fills,
// borders, the single master cellStyleXfs entry, cellXfs, the Normal named
// cell style, and empty differential/table style placeholders. The tree is
// purely data; serialization to bytes belongs to the package writer.
func (ss *StyleSheet) EmitStylesTree() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	root := doc.CreateElement("styleSheet")
	root.CreateAttr("xmlns", styleSheetNS)

	// Built-in formats are implied by their ids and never written out.
	if custom := ss.numfmts.Custom(); len(custom) > 0 {
		numFmts := root.CreateElement("numFmts")
		numFmts.CreateAttr("count", strconv.Itoa(len(custom)))
		for _, cf := range custom {
			nf := numFmts.CreateElement("numFmt")
			nf.CreateAttr("numFmtId", strconv.FormatUint(uint64(cf.ID), 10))
			nf.CreateAttr("formatCode", cf.Code)
		}
	}

	fonts := root.CreateElement("fonts")
	fonts.CreateAttr("count", strconv.Itoa(ss.fonts.size()))
	for _, f := range ss.fonts.all() {
		emitFont(fonts, f)
	}

	fills := root.CreateElement("fills")
	fills.CreateAttr("count", strconv.Itoa(ss.fills.size()))
	for _, f := range ss.fills.all() {
		emitFill(fills, f)
	}

	borders := root.CreateElement("borders")
	borders.CreateAttr("count", strconv.Itoa(ss.borders.size()))
	for _, b := range ss.borders.all() {
		emitBorder(borders, b)
	}

	// One fixed master record; every cellXf points at it through xfId 0.
	cellStyleXfs := root.CreateElement("cellStyleXfs")
	cellStyleXfs.CreateAttr("count", "1")
	master := cellStyleXfs.CreateElement("xf")
	master.CreateAttr("numFmtId", "0")
	master.CreateAttr("fontId", "0")
	master.CreateAttr("fillId", "0")
	master.CreateAttr("borderId", "0")

	cellXfs := root.CreateElement("cellXfs")
	cellXfs.CreateAttr("count", strconv.Itoa(ss.xfs.size()))
	for _, xf := range ss.xfs.all() {
		emitCellFormat(cellXfs, xf)
	}

	cellStyles := root.CreateElement("cellStyles")
	cellStyles.CreateAttr("count", "1")
	normal := cellStyles.CreateElement("cellStyle")
	normal.CreateAttr("name", "Normal")
	normal.CreateAttr("xfId", "0")
	normal.CreateAttr("builtinId", "0")

	root.CreateElement("dxfs").CreateAttr("count", "0")
	root.CreateElement("tableStyles").CreateAttr("count", "0")

	return doc
}

func emitFont(parent *etree.Element, f Font) {
	el := parent.CreateElement("font")
	if f.Bold {
		el.CreateElement("b")
	}
	if f.Italic {
		el.CreateElement("i")
	}
	if f.Underline {
		el.CreateElement("u")
	}
	if f.Strikethrough {
		el.CreateElement("strike")
	}
	sz := el.CreateElement("sz")
	sz.CreateAttr("val", strconv.Itoa(f.Size))
	color := el.CreateElement("color")
	color.CreateAttr("rgb", f.Color.Hex())
	name := el.CreateElement("name")
	name.CreateAttr("val", f.Name)
}

func emitFill(parent *etree.Element, f Fill) {
	el := parent.CreateElement("fill")
	pattern := el.CreateElement("patternFill")
	pattern.CreateAttr("patternType", f.Pattern.String())
	if f.Pattern == PatternTypeNone {
		return
	}
	fg := pattern.CreateElement("fgColor")
	fg.CreateAttr("rgb", f.Foreground.Hex())
	bg := pattern.CreateElement("bgColor")
	bg.CreateAttr("rgb", f.Background.Hex())
}

func emitBorder(parent *etree.Element, b Border) {
	el := parent.CreateElement("border")
	if b.DiagonalUp {
		el.CreateAttr("diagonalUp", "1")
	}
	if b.DiagonalDown {
		el.CreateAttr("diagonalDown", "1")
	}
	emitEdge(el, "left", b.Left)
	emitEdge(el, "right", b.Right)
	emitEdge(el, "top", b.Top)
	emitEdge(el, "bottom", b.Bottom)
	emitEdge(el, "diagonal", b.Diagonal)
}

// emitEdge writes an edge element. Edges without a line stay empty, the
// element itself is always present to keep the border shape regular.
func emitEdge(parent *etree.Element, name string, e Edge) {
	el := parent.CreateElement(name)
	if e.Style == LineStyleNone {
		return
	}
	el.CreateAttr("style", e.Style.String())
	color := el.CreateElement("color")
	color.CreateAttr("rgb", e.Color.Hex())
}

func emitCellFormat(parent *etree.Element, xf CellFormat) {
	el := parent.CreateElement("xf")
	el.CreateAttr("numFmtId", strconv.FormatUint(uint64(xf.NumFmtID), 10))
	el.CreateAttr("fontId", strconv.FormatUint(uint64(xf.FontID), 10))
	el.CreateAttr("fillId", strconv.FormatUint(uint64(xf.FillID), 10))
	el.CreateAttr("borderId", strconv.FormatUint(uint64(xf.BorderID), 10))
	el.CreateAttr("xfId", "0")
	emitApplyFlag(el, "applyFont", xf.ApplyFont)
	emitApplyFlag(el, "applyFill", xf.ApplyFill)
	emitApplyFlag(el, "applyBorder", xf.ApplyBorder)
	emitApplyFlag(el, "applyAlignment", xf.ApplyAlignment)
	emitApplyFlag(el, "applyNumberFormat", xf.ApplyNumberFormat)
	emitApplyFlag(el, "applyProtection", xf.ApplyProtection)

	if !xf.Alignment.IsDefault() {
		a := xf.Alignment
		align := el.CreateElement("alignment")
		if a.Horizontal != HAlignGeneral {
			align.CreateAttr("horizontal", a.Horizontal.String())
		}
		if a.Vertical != VAlignBottom {
			align.CreateAttr("vertical", a.Vertical.String())
		}
		if a.WrapText {
			align.CreateAttr("wrapText", "1")
		}
		if a.ShrinkToFit {
			align.CreateAttr("shrinkToFit", "1")
		}
		if a.TextRotation != 0 {
			align.CreateAttr("textRotation", strconv.Itoa(a.TextRotation))
		}
		if a.Indent != 0 {
			align.CreateAttr("indent", strconv.Itoa(a.Indent))
		}
	}

	if !xf.Locked {
		prot := el.CreateElement("protection")
		prot.CreateAttr("locked", "0")
	}
}

// emitApplyFlag writes an apply attribute only when set; readers treat an
// absent flag as false.
func emitApplyFlag(el *etree.Element, name string, v bool) {
	if v {
		el.CreateAttr(name, "1")
	}
}
