package document

import (
	"context"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"sxl/archive"
)

// OpenFile reads a workbook package from disk. Pass nil to disable logging.
func OpenFile(ctx context.Context, name string, log *zap.Logger) (*Workbook, error) {
	p, err := archive.Open(name)
	if err != nil {
		return nil, fmt.Errorf("unable to open workbook package: %w", err)
	}
	defer p.Close()
	return readPackage(ctx, p, log)
}

// Read reads a workbook package from an in-memory or seekable source.
func Read(ctx context.Context, r io.ReaderAt, size int64, log *zap.Logger) (*Workbook, error) {
	p, err := archive.NewPackage(r, size)
	if err != nil {
		return nil, fmt.Errorf("unable to open workbook package: %w", err)
	}
	return readPackage(ctx, p, log)
}

func readPackage(ctx context.Context, p *archive.Package, log *zap.Logger) (*Workbook, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("unable to read workbook: %w", err)
	}

	wb := NewWorkbook(log)

	if p.Has("xl/styles.xml") {
		doc, err := parsePart(p, "xl/styles.xml")
		if err != nil {
			return nil, err
		}
		if err := wb.styles.LoadStylesTree(doc); err != nil {
			return nil, fmt.Errorf("unable to load styles part: %w", err)
		}
	}

	if p.Has("xl/sharedStrings.xml") {
		doc, err := parsePart(p, "xl/sharedStrings.xml")
		if err != nil {
			return nil, err
		}
		loadSharedStrings(wb.shared, doc)
	}

	wbDoc, err := parsePart(p, "xl/workbook.xml")
	if err != nil {
		return nil, err
	}
	targets, err := worksheetTargets(p)
	if err != nil {
		return nil, err
	}

	root := wbDoc.Root()
	if root == nil || root.Tag != "workbook" {
		return nil, fmt.Errorf("unexpected workbook part root")
	}

	var errs error
	for _, el := range root.SelectElements("sheets") {
		for _, sh := range el.SelectElements("sheet") {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("unable to read workbook: %w", err)
			}
			name := sh.SelectAttrValue("name", "")
			rid := sh.SelectAttrValue("r:id", "")
			target, ok := targets[rid]
			if !ok {
				errs = multierr.Append(errs, fmt.Errorf("sheet %q: no worksheet relationship %q", name, rid))
				continue
			}
			sheet, err := wb.AddSheet(name)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			if err := loadWorksheet(wb, sheet, p, target); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("sheet %q: %w", name, err))
			}
		}
	}
	if errs != nil {
		return nil, errs
	}
	if len(wb.sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	wb.log.Debug("Read workbook package",
		zap.Int("sheets", len(wb.sheets)),
		zap.Int("cell-formats", wb.styles.CellFormatCount()))
	return wb, nil
}

func parsePart(p *archive.Package, name string) (*etree.Document, error) {
	data, err := p.Part(name)
	if err != nil {
		return nil, err
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("unable to parse part %q: %w", name, err)
	}
	return doc, nil
}

// worksheetTargets maps relationship ids from the workbook relationships
// part to worksheet part names.
func worksheetTargets(p *archive.Package) (map[string]string, error) {
	doc, err := parsePart(p, "xl/_rels/workbook.xml.rels")
	if err != nil {
		return nil, err
	}
	targets := make(map[string]string)
	root := doc.Root()
	if root == nil {
		return targets, nil
	}
	for _, rel := range root.SelectElements("Relationship") {
		if rel.SelectAttrValue("Type", "") != relWorksheet {
			continue
		}
		id := rel.SelectAttrValue("Id", "")
		target := rel.SelectAttrValue("Target", "")
		if strings.HasPrefix(target, "/") {
			targets[id] = strings.TrimPrefix(target, "/")
		} else {
			targets[id] = path.Join("xl", target)
		}
	}
	return targets, nil
}

// loadSharedStrings rebuilds the string pool from an sst part. Rich-text
// items are flattened by concatenating their runs.
func loadSharedStrings(pool *sharedStrings, doc *etree.Document) {
	root := doc.Root()
	if root == nil || root.Tag != "sst" {
		return
	}
	for _, si := range root.SelectElements("si") {
		if t := si.SelectElement("t"); t != nil {
			pool.add(t.Text())
			continue
		}
		var sb strings.Builder
		for _, r := range si.SelectElements("r") {
			if t := r.SelectElement("t"); t != nil {
				sb.WriteString(t.Text())
			}
		}
		pool.add(sb.String())
	}
}

func loadWorksheet(wb *Workbook, sheet *Sheet, p *archive.Package, part string) error {
	doc, err := parsePart(p, part)
	if err != nil {
		return err
	}
	root := doc.Root()
	if root == nil || root.Tag != "worksheet" {
		return fmt.Errorf("unexpected worksheet part root")
	}
	data := root.SelectElement("sheetData")
	if data == nil {
		return nil
	}
	for _, row := range data.SelectElements("row") {
		for _, c := range row.SelectElements("c") {
			if err := loadCell(wb, sheet, c); err != nil {
				return err
			}
		}
	}
	return nil
}

func loadCell(wb *Workbook, sheet *Sheet, el *etree.Element) error {
	r := el.SelectAttrValue("r", "")
	ref, err := ParseRef(r)
	if err != nil {
		return err
	}
	cell := &Cell{}
	sheet.cells[ref] = cell

	if s := el.SelectAttrValue("s", ""); s != "" {
		idx, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return fmt.Errorf("cell %s: invalid style index %q: %w", r, s, err)
		}
		cell.style, cell.hasStyle = uint32(idx), true
	}

	var value string
	if v := el.SelectElement("v"); v != nil {
		value = v.Text()
	}

	switch el.SelectAttrValue("t", "") {
	case "s":
		if value == "" {
			return nil
		}
		idx, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("cell %s: invalid shared string index %q: %w", r, value, err)
		}
		str, ok := wb.shared.at(idx)
		if !ok {
			return fmt.Errorf("cell %s: shared string index %d out of range", r, idx)
		}
		cell.kind, cell.str = ValueString, str
	case "b":
		cell.kind, cell.boolean = ValueBool, value == "1" || value == "true"
	case "str":
		// cached formula result, kept as a plain string
		cell.kind, cell.str = ValueString, value
	case "inlineStr":
		if is := el.SelectElement("is"); is != nil {
			if t := is.SelectElement("t"); t != nil {
				cell.kind, cell.str = ValueString, t.Text()
			}
		}
	default:
		if value == "" {
			return nil
		}
		num, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("cell %s: invalid numeric value %q: %w", r, value, err)
		}
		cell.kind, cell.num = ValueNumber, num
	}
	return nil
}
