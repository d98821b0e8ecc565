package styles

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"go.uber.org/zap"
)

// LoadStylesTree rebuilds every pool from a parsed styleSheet part,
// replacing whatever the sheet currently holds. File order defines pool
// indices, so XF component references stay valid. The resolve cache is
// cleared together with the pools; the two form one logical reset.
//
// Unknown elements and attributes are ignored. Structural problems (missing
// root, malformed ids) fail the whole load and leave the sheet unchanged.
func (ss *StyleSheet) LoadStylesTree(doc *etree.Document) error {
	root := doc.SelectElement("styleSheet")
	if root == nil {
		return fmt.Errorf("styles part has no styleSheet root")
	}

	var customs []CustomFormat
	if numFmts := root.SelectElement("numFmts"); numFmts != nil {
		for _, el := range numFmts.SelectElements("numFmt") {
			id, err := attrUint(el, "numFmtId")
			if err != nil {
				return fmt.Errorf("numFmt: %w", err)
			}
			customs = append(customs, CustomFormat{ID: id, Code: el.SelectAttrValue("formatCode", "")})
		}
	}

	var fonts []Font
	if parent := root.SelectElement("fonts"); parent != nil {
		for _, el := range parent.SelectElements("font") {
			fonts = append(fonts, parseFont(el))
		}
	}

	var fills []Fill
	if parent := root.SelectElement("fills"); parent != nil {
		for _, el := range parent.SelectElements("fill") {
			fills = append(fills, parseFill(el))
		}
	}

	var borders []Border
	if parent := root.SelectElement("borders"); parent != nil {
		for _, el := range parent.SelectElements("border") {
			borders = append(borders, parseBorder(el))
		}
	}

	var xfs []CellFormat
	if parent := root.SelectElement("cellXfs"); parent != nil {
		for _, el := range parent.SelectElements("xf") {
			xf, err := parseCellFormat(el)
			if err != nil {
				return fmt.Errorf("cellXfs: %w", err)
			}
			xfs = append(xfs, xf)
		}
	}

	// Nothing failed - swap everything in one go. Pools must never be reset
	// independently of the resolve cache.
	ss.numfmts.reset()
	for _, cf := range customs {
		ss.numfmts.loadCustom(cf.ID, cf.Code)
	}
	ss.fonts.load(withDefault(fonts, DefaultFont()))
	ss.fills.load(withDefault(fills, DefaultFill()))
	ss.borders.load(withDefault(borders, DefaultBorder()))
	ss.xfs.load(withDefault(xfs, defaultCellFormat()))
	clear(ss.resolved)

	ss.log.Debug("styles part loaded",
		zap.Int("fonts", ss.fonts.size()),
		zap.Int("fills", ss.fills.size()),
		zap.Int("borders", ss.borders.size()),
		zap.Int("cellXfs", ss.xfs.size()),
		zap.Int("customNumFmts", len(customs)))
	return nil
}

// withDefault guarantees the reserved index 0 entry even for packages whose
// styles part omits a section entirely.
func withDefault[T any](values []T, def T) []T {
	if len(values) == 0 {
		return []T{def}
	}
	return values
}

func parseFont(el *etree.Element) Font {
	f := DefaultFont()
	f.Bold = el.SelectElement("b") != nil
	f.Italic = el.SelectElement("i") != nil
	f.Underline = el.SelectElement("u") != nil
	f.Strikethrough = el.SelectElement("strike") != nil
	if sz := el.SelectElement("sz"); sz != nil {
		if v, err := strconv.Atoi(sz.SelectAttrValue("val", "")); err == nil && v > 0 {
			f.Size = v
		}
	}
	if color := el.SelectElement("color"); color != nil {
		if c, err := ParseColor(color.SelectAttrValue("rgb", "")); err == nil {
			f.Color = c
		}
	}
	if name := el.SelectElement("name"); name != nil {
		if v := name.SelectAttrValue("val", ""); v != "" {
			f.Name = v
		}
	}
	return f
}

func parseFill(el *etree.Element) Fill {
	f := DefaultFill()
	pattern := el.SelectElement("patternFill")
	if pattern == nil {
		return f
	}
	if p, err := ParsePatternType(pattern.SelectAttrValue("patternType", "none")); err == nil {
		f.Pattern = p
	}
	if f.Pattern == PatternTypeNone {
		return f
	}
	if fg := pattern.SelectElement("fgColor"); fg != nil {
		if c, err := ParseColor(fg.SelectAttrValue("rgb", "")); err == nil {
			f.Foreground = c
		}
	}
	if bg := pattern.SelectElement("bgColor"); bg != nil {
		if c, err := ParseColor(bg.SelectAttrValue("rgb", "")); err == nil {
			f.Background = c
		}
	}
	return f
}

func parseBorder(el *etree.Element) Border {
	b := Border{
		Left:         parseEdge(el.SelectElement("left")),
		Right:        parseEdge(el.SelectElement("right")),
		Top:          parseEdge(el.SelectElement("top")),
		Bottom:       parseEdge(el.SelectElement("bottom")),
		Diagonal:     parseEdge(el.SelectElement("diagonal")),
		DiagonalUp:   attrBool(el, "diagonalUp"),
		DiagonalDown: attrBool(el, "diagonalDown"),
	}
	return b
}

func parseEdge(el *etree.Element) Edge {
	if el == nil {
		return Edge{}
	}
	e := Edge{}
	if s, err := ParseLineStyle(el.SelectAttrValue("style", "none")); err == nil {
		e.Style = s
	}
	if e.Style == LineStyleNone {
		return Edge{}
	}
	if color := el.SelectElement("color"); color != nil {
		if c, err := ParseColor(color.SelectAttrValue("rgb", "")); err == nil {
			e.Color = c
		}
	}
	return e
}

func parseCellFormat(el *etree.Element) (CellFormat, error) {
	xf := CellFormat{Locked: true}
	var err error
	if xf.NumFmtID, err = attrUint(el, "numFmtId"); err != nil {
		return xf, err
	}
	if xf.FontID, err = attrUint(el, "fontId"); err != nil {
		return xf, err
	}
	if xf.FillID, err = attrUint(el, "fillId"); err != nil {
		return xf, err
	}
	if xf.BorderID, err = attrUint(el, "borderId"); err != nil {
		return xf, err
	}
	xf.ApplyFont = attrBool(el, "applyFont")
	xf.ApplyFill = attrBool(el, "applyFill")
	xf.ApplyBorder = attrBool(el, "applyBorder")
	xf.ApplyAlignment = attrBool(el, "applyAlignment")
	xf.ApplyNumberFormat = attrBool(el, "applyNumberFormat")
	xf.ApplyProtection = attrBool(el, "applyProtection")

	if align := el.SelectElement("alignment"); align != nil {
		if h, err := ParseHAlign(align.SelectAttrValue("horizontal", "general")); err == nil {
			xf.Alignment.Horizontal = h
		}
		if v, err := ParseVAlign(align.SelectAttrValue("vertical", "bottom")); err == nil {
			xf.Alignment.Vertical = v
		}
		xf.Alignment.WrapText = attrBool(align, "wrapText")
		xf.Alignment.ShrinkToFit = attrBool(align, "shrinkToFit")
		if v, err := strconv.Atoi(align.SelectAttrValue("textRotation", "0")); err == nil {
			xf.Alignment.TextRotation = v
		}
		if v, err := strconv.Atoi(align.SelectAttrValue("indent", "0")); err == nil {
			xf.Alignment.Indent = v
		}
	}

	if prot := el.SelectElement("protection"); prot != nil {
		xf.Locked = prot.SelectAttrValue("locked", "1") != "0"
	}
	return xf, nil
}

func attrUint(el *etree.Element, name string) (uint32, error) {
	raw := el.SelectAttrValue(name, "0")
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("attribute %s=%q: %w", name, raw, err)
	}
	return uint32(v), nil
}

func attrBool(el *etree.Element, name string) bool {
	v := el.SelectAttrValue(name, "")
	return v == "1" || v == "true"
}
