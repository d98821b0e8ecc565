package document

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/beevik/etree"
	fixzip "github.com/hidez8891/zip"
	"go.uber.org/zap"
)

const (
	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsRelationships = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsSpreadsheet   = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"
	nsOfficeRel     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

	relOfficeDocument = nsOfficeRel + "/officeDocument"
	relWorksheet      = nsOfficeRel + "/worksheet"
	relStyles         = nsOfficeRel + "/styles"
	relSharedStrings  = nsOfficeRel + "/sharedStrings"
	relCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relExtProps       = nsOfficeRel + "/extended-properties"

	ctWorkbook      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"
	ctWorksheet     = "application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"
	ctStyles        = "application/vnd.openxmlformats-officedocument.spreadsheetml.styles+xml"
	ctSharedStrings = "application/vnd.openxmlformats-officedocument.spreadsheetml.sharedStrings+xml"
	ctCoreProps     = "application/vnd.openxmlformats-package.core-properties+xml"
	ctExtProps      = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
)

// Write serializes the workbook into w as a zipped OOXML package. The
// shared-string pool is rebuilt from the current cell contents on every
// call, so repeated writes stay in sync with the graph.
func (wb *Workbook) Write(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("unable to write workbook: %w", err)
	}
	if len(wb.sheets) == 0 {
		return fmt.Errorf("workbook has no sheets")
	}

	wb.shared.reset()

	zw := zip.NewWriter(w)
	defer zw.Close()

	if err := writeXMLToZip(zw, "[Content_Types].xml", wb.contentTypesDoc()); err != nil {
		return fmt.Errorf("unable to write content types: %w", err)
	}
	if err := writeXMLToZip(zw, "_rels/.rels", wb.packageRelsDoc()); err != nil {
		return fmt.Errorf("unable to write package relationships: %w", err)
	}
	if err := writeXMLToZip(zw, "docProps/core.xml", wb.corePropsDoc()); err != nil {
		return fmt.Errorf("unable to write core properties: %w", err)
	}
	if err := writeXMLToZip(zw, "docProps/app.xml", wb.appPropsDoc()); err != nil {
		return fmt.Errorf("unable to write extended properties: %w", err)
	}
	if err := writeXMLToZip(zw, "xl/workbook.xml", wb.workbookDoc()); err != nil {
		return fmt.Errorf("unable to write workbook part: %w", err)
	}
	if err := writeXMLToZip(zw, "xl/_rels/workbook.xml.rels", wb.workbookRelsDoc()); err != nil {
		return fmt.Errorf("unable to write workbook relationships: %w", err)
	}

	for i, sheet := range wb.sheets {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("unable to write workbook: %w", err)
		}
		name := fmt.Sprintf("xl/worksheets/sheet%d.xml", i+1)
		if err := writeXMLToZip(zw, name, wb.worksheetDoc(sheet)); err != nil {
			return fmt.Errorf("unable to write worksheet %q: %w", sheet.name, err)
		}
	}

	// worksheetDoc populates the shared-string pool, so these parts must
	// come after the sheets.
	if err := writeXMLToZip(zw, "xl/sharedStrings.xml", wb.sharedStringsDoc()); err != nil {
		return fmt.Errorf("unable to write shared strings: %w", err)
	}
	if err := writeXMLToZip(zw, "xl/styles.xml", wb.styles.EmitStylesTree()); err != nil {
		return fmt.Errorf("unable to write styles part: %w", err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("unable to close output archive: %w", err)
	}

	wb.log.Debug("Wrote workbook package",
		zap.Int("sheets", len(wb.sheets)),
		zap.Int("shared-strings", len(wb.shared.items)),
		zap.Int("cell-formats", wb.styles.CellFormatCount()))
	return nil
}

// SaveFile writes the package to path. When fixZip is set the archive is
// rewritten without data descriptors for readers that cannot handle them.
func (wb *Workbook) SaveFile(ctx context.Context, path string, fixZip bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if !fixZip {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("unable to create output file: %w", err)
		}
		defer f.Close()
		if err := wb.Write(ctx, f); err != nil {
			return err
		}
		return f.Close()
	}

	_, tmpName := filepath.Split(path)
	tmp, err := os.CreateTemp(filepath.Dir(path), tmpName+".*")
	if err != nil {
		return fmt.Errorf("unable to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if err := wb.Write(ctx, tmp); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("unable to finalize temporary file: %w", err)
	}
	return copyZipWithoutDataDescriptors(tmp.Name(), path)
}

// copyZipWithoutDataDescriptors rewrites an archive entry by entry with the
// data descriptor flag cleared.
func copyZipWithoutDataDescriptors(from, to string) error {
	out, err := os.Create(to)
	if err != nil {
		return fmt.Errorf("unable to create target file (%s): %w", to, err)
	}
	defer out.Close()

	r, err := fixzip.OpenReader(from)
	if err != nil {
		return fmt.Errorf("unable to read archive file (%s): %w", from, err)
	}
	defer r.Close()

	w := fixzip.NewWriter(out)
	defer w.Close()

	for _, file := range r.File {
		file.Flags &= ^fixzip.FlagDataDescriptor
		if err := w.CopyFile(file); err != nil {
			return fmt.Errorf("unable to write target file (%s): %w", to, err)
		}
	}
	return nil
}

func (wb *Workbook) contentTypesDoc() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	types := doc.CreateElement("Types")
	types.CreateAttr("xmlns", nsContentTypes)

	def := types.CreateElement("Default")
	def.CreateAttr("Extension", "rels")
	def.CreateAttr("ContentType", "application/vnd.openxmlformats-package.relationships+xml")
	def = types.CreateElement("Default")
	def.CreateAttr("Extension", "xml")
	def.CreateAttr("ContentType", "application/xml")

	override := func(part, ct string) {
		o := types.CreateElement("Override")
		o.CreateAttr("PartName", part)
		o.CreateAttr("ContentType", ct)
	}
	override("/xl/workbook.xml", ctWorkbook)
	for i := range wb.sheets {
		override(fmt.Sprintf("/xl/worksheets/sheet%d.xml", i+1), ctWorksheet)
	}
	override("/xl/styles.xml", ctStyles)
	override("/xl/sharedStrings.xml", ctSharedStrings)
	override("/docProps/core.xml", ctCoreProps)
	override("/docProps/app.xml", ctExtProps)
	return doc
}

func relationship(parent *etree.Element, id, relType, target string) {
	rel := parent.CreateElement("Relationship")
	rel.CreateAttr("Id", id)
	rel.CreateAttr("Type", relType)
	rel.CreateAttr("Target", target)
}

func (wb *Workbook) packageRelsDoc() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	rels := doc.CreateElement("Relationships")
	rels.CreateAttr("xmlns", nsRelationships)
	relationship(rels, "rId1", relOfficeDocument, "xl/workbook.xml")
	relationship(rels, "rId2", relCoreProps, "docProps/core.xml")
	relationship(rels, "rId3", relExtProps, "docProps/app.xml")
	return doc
}

func (wb *Workbook) corePropsDoc() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	props := doc.CreateElement("cp:coreProperties")
	props.CreateAttr("xmlns:cp", "http://schemas.openxmlformats.org/package/2006/metadata/core-properties")
	props.CreateAttr("xmlns:dc", "http://purl.org/dc/elements/1.1/")
	props.CreateAttr("xmlns:dcterms", "http://purl.org/dc/terms/")
	props.CreateAttr("xmlns:xsi", "http://www.w3.org/2001/XMLSchema-instance")
	props.CreateElement("dc:creator").SetText("sxl")
	created := props.CreateElement("dcterms:created")
	created.CreateAttr("xsi:type", "dcterms:W3CDTF")
	created.SetText(time.Now().UTC().Format(time.RFC3339))
	return doc
}

func (wb *Workbook) appPropsDoc() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	props := doc.CreateElement("Properties")
	props.CreateAttr("xmlns", "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties")
	props.CreateElement("Application").SetText("sxl")
	return doc
}

func (wb *Workbook) workbookDoc() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	root := doc.CreateElement("workbook")
	root.CreateAttr("xmlns", nsSpreadsheet)
	root.CreateAttr("xmlns:r", nsOfficeRel)
	sheets := root.CreateElement("sheets")
	for i, s := range wb.sheets {
		el := sheets.CreateElement("sheet")
		el.CreateAttr("name", s.name)
		el.CreateAttr("sheetId", strconv.Itoa(i+1))
		el.CreateAttr("r:id", fmt.Sprintf("rId%d", i+1))
	}
	return doc
}

func (wb *Workbook) workbookRelsDoc() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	rels := doc.CreateElement("Relationships")
	rels.CreateAttr("xmlns", nsRelationships)
	for i := range wb.sheets {
		relationship(rels, fmt.Sprintf("rId%d", i+1), relWorksheet,
			fmt.Sprintf("worksheets/sheet%d.xml", i+1))
	}
	relationship(rels, fmt.Sprintf("rId%d", len(wb.sheets)+1), relStyles, "styles.xml")
	relationship(rels, fmt.Sprintf("rId%d", len(wb.sheets)+2), relSharedStrings, "sharedStrings.xml")
	return doc
}

func (wb *Workbook) worksheetDoc(sheet *Sheet) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	root := doc.CreateElement("worksheet")
	root.CreateAttr("xmlns", nsSpreadsheet)
	data := root.CreateElement("sheetData")

	var rowEl *etree.Element
	lastRow := 0
	for _, ref := range sheet.Refs() {
		cell := sheet.cells[ref]
		if cell.kind == ValueEmpty && !cell.hasStyle {
			continue
		}
		if ref.Row != lastRow {
			rowEl = data.CreateElement("row")
			rowEl.CreateAttr("r", strconv.Itoa(ref.Row))
			lastRow = ref.Row
		}
		c := rowEl.CreateElement("c")
		c.CreateAttr("r", ref.String())
		if cell.hasStyle {
			c.CreateAttr("s", strconv.FormatUint(uint64(cell.style), 10))
		}
		switch cell.kind {
		case ValueString:
			c.CreateAttr("t", "s")
			c.CreateElement("v").SetText(strconv.Itoa(wb.shared.add(cell.str)))
		case ValueNumber:
			c.CreateElement("v").SetText(strconv.FormatFloat(cell.num, 'g', -1, 64))
		case ValueBool:
			c.CreateAttr("t", "b")
			v := "0"
			if cell.boolean {
				v = "1"
			}
			c.CreateElement("v").SetText(v)
		}
	}
	return doc
}

func (wb *Workbook) sharedStringsDoc() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	sst := doc.CreateElement("sst")
	sst.CreateAttr("xmlns", nsSpreadsheet)
	sst.CreateAttr("count", strconv.Itoa(len(wb.shared.items)))
	sst.CreateAttr("uniqueCount", strconv.Itoa(len(wb.shared.items)))
	for _, s := range wb.shared.items {
		si := sst.CreateElement("si")
		t := si.CreateElement("t")
		t.SetText(s)
	}
	return doc
}

func writeXMLToZip(zw *zip.Writer, name string, doc *etree.Document) error {
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return err
	}
	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}
