package main

import (
	"context"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"sxl/document"
	"sxl/state"
	"sxl/styles"
	"sxl/utils/debug"
)

// dumpStyles prints the canonicalized style sheet of an existing workbook.
func dumpStyles(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() == 0 {
		return fmt.Errorf("no source specified")
	}
	if cmd.Args().Len() > 2 {
		env.Log.Warn("Malformed command line, too many arguments", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	source := cmd.Args().Get(0)
	wb, err := document.OpenFile(ctx, source, env.Log)
	if err != nil {
		return fmt.Errorf("unable to open workbook: %w", err)
	}

	tw := debug.NewTreeWriter()
	tw.Line(0, "workbook %s", source)
	tw.KeyValue(1, "sheets", len(wb.Sheets()))

	ss := wb.Styles()
	tw.Line(1, "styles")
	tw.KeyValue(2, "fonts", ss.FontCount())
	tw.KeyValue(2, "fills", ss.FillCount())
	tw.KeyValue(2, "borders", ss.BorderCount())
	tw.KeyValue(2, "cell formats", ss.CellFormatCount())

	if custom := ss.CustomFormats(); len(custom) > 0 {
		tw.Line(1, "custom number formats")
		for _, cf := range custom {
			tw.TextBlock(2, fmt.Sprintf("id=%d", cf.ID), cf.Code)
		}
	}

	tw.Line(1, "cell formats")
	for i, xf := range ss.CellFormats() {
		style := ss.ResolveStyle(uint32(i))
		tw.Line(2, "xf %d", i)
		dumpFont(tw, style.Font)
		if style.Fill.Pattern != styles.PatternTypeNone {
			tw.KeyValue(3, "fill", style.Fill.Pattern)
			tw.KeyValue(4, "foreground", style.Fill.Foreground.Hex())
		}
		dumpBorder(tw, style.Border)
		if style.NumberFormat.Kind != styles.NumberFormatKindGeneral {
			tw.KeyValue(3, "number format", style.NumberFormat.Kind)
			tw.TextBlock(4, "code", style.NumberFormat.FormatCode())
		}
		if !style.Alignment.IsDefault() {
			dumpAlignment(tw, style.Alignment)
		}
		if !xf.Locked {
			tw.KeyValue(3, "locked", false)
		}
	}

	fname := cmd.Args().Get(1)
	out := os.Stdout
	if len(fname) > 0 {
		out, err = os.Create(fname)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer out.Close()
	}

	if len(fname) == 0 {
		fname = "STDOUT"
	}
	env.Log.Info("Dumping styles", zap.String("source", source), zap.String("file", fname))

	if _, err := fmt.Fprint(out, tw.String()); err != nil {
		return fmt.Errorf("unable to write dump: %w", err)
	}
	return nil
}

func dumpFont(tw *debug.TreeWriter, f styles.Font) {
	tw.KeyValue(3, "font", f.Name)
	tw.KeyValue(4, "size", f.Size)
	tw.KeyValue(4, "color", f.Color.Hex())
	if f.Bold {
		tw.KeyValue(4, "bold", true)
	}
	if f.Italic {
		tw.KeyValue(4, "italic", true)
	}
	if f.Underline {
		tw.KeyValue(4, "underline", true)
	}
	if f.Strikethrough {
		tw.KeyValue(4, "strikethrough", true)
	}
}

func dumpBorder(tw *debug.TreeWriter, b styles.Border) {
	edges := []struct {
		name string
		edge styles.Edge
	}{
		{"left", b.Left},
		{"right", b.Right},
		{"top", b.Top},
		{"bottom", b.Bottom},
		{"diagonal", b.Diagonal},
	}
	for _, e := range edges {
		if e.edge.Style == styles.LineStyleNone {
			continue
		}
		tw.KeyValue(3, "border "+e.name, e.edge.Style)
		tw.KeyValue(4, "color", e.edge.Color.Hex())
	}
}

func dumpAlignment(tw *debug.TreeWriter, a styles.Alignment) {
	tw.Line(3, "alignment")
	if a.Horizontal != styles.HAlignGeneral {
		tw.KeyValue(4, "horizontal", a.Horizontal)
	}
	if a.Vertical != styles.VAlignBottom {
		tw.KeyValue(4, "vertical", a.Vertical)
	}
	if a.WrapText {
		tw.KeyValue(4, "wrap", true)
	}
	if a.ShrinkToFit {
		tw.KeyValue(4, "shrink", true)
	}
	if a.TextRotation != 0 {
		tw.KeyValue(4, "rotation", a.TextRotation)
	}
	if a.Indent != 0 {
		tw.KeyValue(4, "indent", a.Indent)
	}
}
