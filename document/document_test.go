package document

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/beevik/etree"

	"sxl/archive"
	"sxl/styles"
)

func buildTestWorkbook(t *testing.T) *Workbook {
	t.Helper()

	wb := NewWorkbook(nil)
	sheet, err := wb.AddSheet("Report")
	if err != nil {
		t.Fatalf("AddSheet() error = %v", err)
	}

	header := styles.DefaultStyle()
	header.Font.Bold = true
	header.Alignment.Horizontal = styles.HAlignCenter

	money := styles.DefaultStyle()
	money.NumberFormat = styles.NumberFormat{
		Kind:      styles.NumberFormatKindCurrency,
		Decimals:  2,
		Thousands: true,
		Symbol:    "$",
	}

	sheet.SetString("A1", "Item")
	sheet.SetString("B1", "Total")
	sheet.SetStyle("A1", header)
	sheet.SetStyle("B1", header)
	sheet.SetString("A2", "Widgets")
	sheet.SetNumber("B2", 1234.5)
	sheet.SetStyle("B2", money)
	sheet.SetBool("C2", true)

	if _, err := wb.AddSheet("Notes"); err != nil {
		t.Fatalf("AddSheet() error = %v", err)
	}
	notes := wb.Sheet("Notes")
	notes.SetString("A1", "Widgets")

	return wb
}

func TestAddSheetRejectsDuplicates(t *testing.T) {
	wb := NewWorkbook(nil)
	if _, err := wb.AddSheet("Data"); err != nil {
		t.Fatalf("AddSheet() error = %v", err)
	}
	if _, err := wb.AddSheet("Data"); err == nil {
		t.Error("AddSheet() expected error for duplicate name")
	}
	if _, err := wb.AddSheet(""); err == nil {
		t.Error("AddSheet() expected error for empty name")
	}
}

func TestWriteRequiresSheet(t *testing.T) {
	wb := NewWorkbook(nil)
	var buf bytes.Buffer
	if err := wb.Write(context.Background(), &buf); err == nil {
		t.Error("Write() expected error for empty workbook")
	}
}

func TestWriteCancelled(t *testing.T) {
	wb := buildTestWorkbook(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	if err := wb.Write(ctx, &buf); err == nil {
		t.Error("Write() expected error for cancelled context")
	}
}

func TestWritePackageLayout(t *testing.T) {
	wb := buildTestWorkbook(t)
	var buf bytes.Buffer
	if err := wb.Write(context.Background(), &buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	p, err := archive.NewPackage(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("NewPackage() error = %v", err)
	}
	defer p.Close()

	for _, part := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/core.xml",
		"docProps/app.xml",
		"xl/workbook.xml",
		"xl/_rels/workbook.xml.rels",
		"xl/worksheets/sheet1.xml",
		"xl/worksheets/sheet2.xml",
		"xl/sharedStrings.xml",
		"xl/styles.xml",
	} {
		if !p.Has(part) {
			t.Errorf("package is missing part %s", part)
		}
	}
}

func TestSharedStringsInterned(t *testing.T) {
	wb := buildTestWorkbook(t)
	var buf bytes.Buffer
	if err := wb.Write(context.Background(), &buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	p, err := archive.NewPackage(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("NewPackage() error = %v", err)
	}
	defer p.Close()

	data, err := p.Part("xl/sharedStrings.xml")
	if err != nil {
		t.Fatalf("Part() error = %v", err)
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		t.Fatalf("unable to parse shared strings: %v", err)
	}

	// "Widgets" appears in two cells but must be stored once
	items := doc.Root().SelectElements("si")
	if len(items) != 3 {
		t.Fatalf("got %d shared strings, want 3", len(items))
	}
	count := 0
	for _, si := range items {
		if si.SelectElement("t").Text() == "Widgets" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("%q stored %d times, want 1", "Widgets", count)
	}
}

func TestWorkbookRoundTrip(t *testing.T) {
	src := buildTestWorkbook(t)
	var buf bytes.Buffer
	if err := src.Write(context.Background(), &buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	dst, err := Read(context.Background(), bytes.NewReader(buf.Bytes()), int64(buf.Len()), nil)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if len(dst.Sheets()) != 2 {
		t.Fatalf("got %d sheets, want 2", len(dst.Sheets()))
	}
	if dst.Sheets()[0].Name() != "Report" || dst.Sheets()[1].Name() != "Notes" {
		t.Errorf("sheet names = %s, %s", dst.Sheets()[0].Name(), dst.Sheets()[1].Name())
	}

	sheet := dst.Sheet("Report")

	checkString := func(ref, want string) {
		t.Helper()
		c, err := sheet.Cell(ref)
		if err != nil || c == nil {
			t.Fatalf("Cell(%s) = %v, %v", ref, c, err)
		}
		if c.Kind() != ValueString || c.String() != want {
			t.Errorf("Cell(%s) = kind %d value %q, want string %q", ref, c.Kind(), c.String(), want)
		}
	}
	checkString("A1", "Item")
	checkString("B1", "Total")
	checkString("A2", "Widgets")

	b2, _ := sheet.Cell("B2")
	if b2.Kind() != ValueNumber || b2.Number() != 1234.5 {
		t.Errorf("Cell(B2) = kind %d value %v, want number 1234.5", b2.Kind(), b2.Number())
	}
	c2, _ := sheet.Cell("C2")
	if c2.Kind() != ValueBool || !c2.Bool() {
		t.Errorf("Cell(C2) = kind %d value %v, want bool true", c2.Kind(), c2.Bool())
	}

	// styles survive the trip through the package
	idx, ok := b2.StyleIndex()
	if !ok {
		t.Fatal("Cell(B2) has no style index")
	}
	style := dst.StyleAt(idx)
	if style.NumberFormat.Kind != styles.NumberFormatKindCurrency {
		t.Errorf("B2 number format kind = %v, want currency", style.NumberFormat.Kind)
	}
	if style.NumberFormat.Decimals != 2 || !style.NumberFormat.Thousands || style.NumberFormat.Symbol != "$" {
		t.Errorf("B2 number format = %+v", style.NumberFormat)
	}

	a1, _ := sheet.Cell("A1")
	idx, ok = a1.StyleIndex()
	if !ok {
		t.Fatal("Cell(A1) has no style index")
	}
	style = dst.StyleAt(idx)
	if !style.Font.Bold {
		t.Error("A1 font should be bold")
	}
	if style.Alignment.Horizontal != styles.HAlignCenter {
		t.Errorf("A1 horizontal alignment = %v, want center", style.Alignment.Horizontal)
	}
}

func TestStyleIndicesSharedAcrossCells(t *testing.T) {
	wb := NewWorkbook(nil)
	sheet, err := wb.AddSheet("Data")
	if err != nil {
		t.Fatalf("AddSheet() error = %v", err)
	}

	bold := styles.DefaultStyle()
	bold.Font.Bold = true

	i1, err := sheet.SetStyle("A1", bold)
	if err != nil {
		t.Fatalf("SetStyle() error = %v", err)
	}
	i2, err := sheet.SetStyle("B7", bold)
	if err != nil {
		t.Fatalf("SetStyle() error = %v", err)
	}
	if i1 != i2 {
		t.Errorf("identical styles got distinct indices %d and %d", i1, i2)
	}
	if err := sheet.SetStyleIndex("C9", i1); err != nil {
		t.Fatalf("SetStyleIndex() error = %v", err)
	}
	c, _ := sheet.Cell("C9")
	if got, ok := c.StyleIndex(); !ok || got != i1 {
		t.Errorf("Cell(C9) style index = %d, %v, want %d", got, ok, i1)
	}
}

func TestSaveFile(t *testing.T) {
	wb := buildTestWorkbook(t)
	for _, fixZip := range []bool{false, true} {
		name := "plain"
		if fixZip {
			name = "fixzip"
		}
		t.Run(name, func(t *testing.T) {
			path := t.TempDir() + "/out.xlsx"
			if err := wb.SaveFile(context.Background(), path, fixZip); err != nil {
				t.Fatalf("SaveFile() error = %v", err)
			}
			dst, err := OpenFile(context.Background(), path, nil)
			if err != nil {
				t.Fatalf("OpenFile() error = %v", err)
			}
			if len(dst.Sheets()) != 2 {
				t.Errorf("got %d sheets, want 2", len(dst.Sheets()))
			}
		})
	}
}

func TestReadRejectsGarbage(t *testing.T) {
	data := []byte("this is not a zip archive")
	if _, err := Read(context.Background(), bytes.NewReader(data), int64(len(data)), nil); err == nil {
		t.Error("Read() expected error for non-zip input")
	}
}

func TestReadMissingWorkbookPart(t *testing.T) {
	var buf bytes.Buffer
	wb := buildTestWorkbook(t)
	if err := wb.Write(context.Background(), &buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	// rebuild the archive without the workbook part
	p, err := archive.NewPackage(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("NewPackage() error = %v", err)
	}
	var out bytes.Buffer
	zw := zip.NewWriter(&out)
	err = p.Walk("", func(name string, r io.Reader) error {
		if name == "xl/workbook.xml" {
			return nil
		}
		w, err := zw.Create(name)
		if err != nil {
			return err
		}
		_, err = io.Copy(w, r)
		return err
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	zw.Close()

	_, err = Read(context.Background(), bytes.NewReader(out.Bytes()), int64(out.Len()), nil)
	if err == nil {
		t.Fatal("Read() expected error for package without workbook part")
	}
	if !strings.Contains(err.Error(), "xl/workbook.xml") {
		t.Errorf("error %q should name the missing part", err)
	}
}
