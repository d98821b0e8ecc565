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
)

// generateDemo builds a small invoice-like workbook to show what the style
// engine produces for a real sheet.
func generateDemo(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() == 0 {
		return fmt.Errorf("no destination specified")
	}
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fname := cmd.Args().Get(0)
	if _, err := os.Stat(fname); err == nil && !cmd.Bool("overwrite") {
		return fmt.Errorf("destination '%s' already exists, use --overwrite to replace it", fname)
	}

	wb := document.NewWorkbook(env.Log)
	sheet, err := wb.AddSheet("Invoice")
	if err != nil {
		return err
	}

	base := styles.DefaultStyle()
	base.Font.Name = env.Cfg.Document.Styles.FontName
	base.Font.Size = env.Cfg.Document.Styles.FontSize

	header := base
	header.Font.Bold = true
	header.Fill = styles.SolidFill(0xFFD9E1F2)
	header.Alignment.Horizontal = styles.HAlignCenter
	header.Border.Bottom = styles.Edge{Style: styles.LineStyleMedium, Color: styles.ColorBlack}

	money := base
	money.NumberFormat = styles.CurrencyFormat(env.Locale, 2, true)

	percent := base
	percent.NumberFormat = styles.NumberFormat{Kind: styles.NumberFormatKindPercentage, Decimals: 1}

	date := base
	date.NumberFormat = styles.NumberFormat{Kind: styles.NumberFormatKindDate}

	sheet.SetString("A1", "Item")
	sheet.SetString("B1", "Shipped")
	sheet.SetString("C1", "Amount")
	sheet.SetString("D1", "Margin")
	for _, ref := range []string{"A1", "B1", "C1", "D1"} {
		if _, err := sheet.SetStyle(ref, header); err != nil {
			return err
		}
	}

	rows := []struct {
		item   string
		day    float64
		amount float64
		margin float64
	}{
		{"Widgets", 45901, 1299.99, 0.12},
		{"Gears", 45917, 249.5, 0.31},
		{"Sprockets", 45930, 18750, 0.085},
	}
	for i, r := range rows {
		row := i + 2
		sheet.SetString(fmt.Sprintf("A%d", row), r.item)
		sheet.SetNumber(fmt.Sprintf("B%d", row), r.day)
		sheet.SetNumber(fmt.Sprintf("C%d", row), r.amount)
		sheet.SetNumber(fmt.Sprintf("D%d", row), r.margin)
		if _, err := sheet.SetStyle(fmt.Sprintf("B%d", row), date); err != nil {
			return err
		}
		if _, err := sheet.SetStyle(fmt.Sprintf("C%d", row), money); err != nil {
			return err
		}
		if _, err := sheet.SetStyle(fmt.Sprintf("D%d", row), percent); err != nil {
			return err
		}
	}

	if err := wb.SaveFile(ctx, fname, env.Cfg.Document.FixZip); err != nil {
		return fmt.Errorf("unable to save workbook: %w", err)
	}

	env.Log.Info("Generated demo workbook",
		zap.String("file", fname),
		zap.Int("cell-formats", wb.Styles().CellFormatCount()),
		zap.Int("fonts", wb.Styles().FontCount()))
	return nil
}
