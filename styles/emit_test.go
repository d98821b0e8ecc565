package styles

import (
	"testing"

	"github.com/beevik/etree"
)

func buildTestSheet(t *testing.T) *StyleSheet {
	t.Helper()
	ss := NewStyleSheet(nil)

	header := DefaultStyle()
	header.Font = Font{Name: "Arial", Size: 14, Color: ColorWhite, Bold: true}
	header.Fill = SolidFill(ColorBlack)
	header.Alignment = Alignment{Horizontal: HAlignCenter, Vertical: VAlignCenter, WrapText: true}
	ss.RegisterCellFormat(header)

	money := DefaultStyle()
	money.NumberFormat = NumberFormat{Kind: NumberFormatKindCurrency, Decimals: 2, Thousands: true, Symbol: "$"}
	money.Locked = false
	ss.RegisterCellFormat(money)

	return ss
}

func TestEmitStylesTreePartOrder(t *testing.T) {
	doc := buildTestSheet(t).EmitStylesTree()

	root := doc.SelectElement("styleSheet")
	if root == nil {
		t.Fatal("no styleSheet root")
	}
	if ns := root.SelectAttrValue("xmlns", ""); ns != styleSheetNS {
		t.Errorf("namespace %q, want %q", ns, styleSheetNS)
	}

	want := []string{"numFmts", "fonts", "fills", "borders", "cellStyleXfs", "cellXfs", "cellStyles", "dxfs", "tableStyles"}
	children := root.ChildElements()
	if len(children) != len(want) {
		t.Fatalf("%d sections, want %d", len(children), len(want))
	}
	for i, el := range children {
		if el.Tag != want[i] {
			t.Errorf("section %d: %s, want %s", i, el.Tag, want[i])
		}
	}
}

func TestEmitStylesTreeContent(t *testing.T) {
	doc := buildTestSheet(t).EmitStylesTree()
	root := doc.SelectElement("styleSheet")

	// The currency format is the only custom one.
	numFmts := root.SelectElement("numFmts")
	if numFmts == nil {
		t.Fatal("numFmts section missing")
	}
	entries := numFmts.SelectElements("numFmt")
	if len(entries) != 1 {
		t.Fatalf("%d numFmt entries, want 1", len(entries))
	}
	if id := entries[0].SelectAttrValue("numFmtId", ""); id != "164" {
		t.Errorf("numFmtId %s, want 164", id)
	}
	if code := entries[0].SelectAttrValue("formatCode", ""); code != "$#,##0.00" {
		t.Errorf("formatCode %q, want %q", code, "$#,##0.00")
	}

	cellXfs := root.SelectElement("cellXfs")
	xfs := cellXfs.SelectElements("xf")
	if len(xfs) != 3 {
		t.Fatalf("%d cellXfs entries, want 3 (default, header, money)", len(xfs))
	}

	// Header XF: alignment child, no protection child.
	header := xfs[1]
	align := header.SelectElement("alignment")
	if align == nil {
		t.Fatal("header xf has no alignment child")
	}
	if h := align.SelectAttrValue("horizontal", ""); h != "center" {
		t.Errorf("horizontal %q, want center", h)
	}
	if header.SelectElement("protection") != nil {
		t.Error("header xf should not carry a protection child")
	}

	// Money XF: protection child (unlocked), no alignment child.
	money := xfs[2]
	prot := money.SelectElement("protection")
	if prot == nil {
		t.Fatal("money xf has no protection child")
	}
	if v := prot.SelectAttrValue("locked", ""); v != "0" {
		t.Errorf("locked %q, want 0", v)
	}
	if money.SelectElement("alignment") != nil {
		t.Error("money xf should not carry an alignment child")
	}
	if v := money.SelectAttrValue("applyNumberFormat", ""); v != "1" {
		t.Errorf("applyNumberFormat %q, want 1", v)
	}
}

func TestEmitOmitsEmptyNumFmts(t *testing.T) {
	ss := NewStyleSheet(nil)
	doc := ss.EmitStylesTree()
	if doc.SelectElement("styleSheet").SelectElement("numFmts") != nil {
		t.Error("numFmts section present without custom formats")
	}
}

func TestLoadStylesTreeRoundTrip(t *testing.T) {
	src := buildTestSheet(t)
	doc := src.EmitStylesTree()

	dst := NewStyleSheet(nil)
	if err := dst.LoadStylesTree(doc); err != nil {
		t.Fatalf("LoadStylesTree: %v", err)
	}

	if dst.FontCount() != src.FontCount() ||
		dst.FillCount() != src.FillCount() ||
		dst.BorderCount() != src.BorderCount() ||
		dst.CellFormatCount() != src.CellFormatCount() {
		t.Fatalf("pool sizes after load: fonts %d fills %d borders %d xfs %d",
			dst.FontCount(), dst.FillCount(), dst.BorderCount(), dst.CellFormatCount())
	}

	for idx := uint32(0); idx < uint32(src.CellFormatCount()); idx++ {
		want := src.ResolveStyle(idx)
		got := dst.ResolveStyle(idx)
		if got.Font.Key() != want.Font.Key() ||
			got.Fill.Key() != want.Fill.Key() ||
			got.Border.Key() != want.Border.Key() ||
			got.Alignment != want.Alignment ||
			got.Locked != want.Locked {
			t.Errorf("xf %d: resolved %+v, want %+v", idx, got, want)
		}
		if got.NumberFormat.Kind != want.NumberFormat.Kind {
			t.Errorf("xf %d: number format kind %s, want %s", idx, got.NumberFormat.Kind, want.NumberFormat.Kind)
		}
	}
}

func TestLoadStylesTreeRejectsWrongRoot(t *testing.T) {
	doc := etree.NewDocument()
	doc.CreateElement("workbook")

	ss := NewStyleSheet(nil)
	ss.RegisterFont(Font{Name: "Arial", Size: 9, Color: ColorBlack})
	if err := ss.LoadStylesTree(doc); err == nil {
		t.Fatal("expected an error for a non-styleSheet document")
	}
	// Failed loads leave the sheet unchanged.
	if ss.FontCount() != 2 {
		t.Errorf("FontCount() = %d after failed load, want 2", ss.FontCount())
	}
}
