package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"pricing-bot/internal/pricing"
)

const (
	CasinoSheet     = "Casino"
	SportsbookSheet = "Sportsbook"
)

// Workbook builds a workbook with the computed rates for the bracket, one
// sheet per product. Rates are stored as numbers with a percent suffix
// format; missing casino cells stay blank. The caller closes the file.
func Workbook(cat *pricing.Catalog, b pricing.RevenueBracket) (*excelize.File, error) {
	const operation = "export.Workbook"

	casino, err := pricing.CasinoDisplayRows(cat.Casino, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	sportsbook, err := pricing.SportsbookDisplayRows(cat.Sportsbook, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	f := excelize.NewFile()
	ok := false
	defer func() {
		if !ok {
			_ = f.Close()
		}
	}()

	// The default sheet becomes the casino sheet.
	if err := f.SetSheetName(f.GetSheetName(0), CasinoSheet); err != nil {
		return nil, fmt.Errorf("%s: failed to rename sheet: %w", operation, err)
	}
	if _, err := f.NewSheet(SportsbookSheet); err != nil {
		return nil, fmt.Errorf("%s: failed to create sheet: %w", operation, err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create style: %w", operation, err)
	}
	percentFmt := `0"%"`
	rateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &percentFmt})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create style: %w", operation, err)
	}

	label := "Monthly GGR: " + pricing.FormatBracket(b)

	// Casino
	casinoHeaders := pricing.CasinoHeaders()
	if err := writeHeader(f, CasinoSheet, label, casinoHeaders, headerStyle); err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	for row, r := range casino {
		for col, c := range r.Cells {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+3)
			switch {
			case c.Numeric:
				f.SetCellValue(CasinoSheet, cell, c.Value)
				f.SetCellStyle(CasinoSheet, cell, cell, rateStyle)
			case c.Present:
				f.SetCellValue(CasinoSheet, cell, c.Text)
			}
		}
	}

	// Sportsbook
	if err := writeHeader(f, SportsbookSheet, label, pricing.SportsbookHeaders(), headerStyle); err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	for row, r := range sportsbook {
		nameCell, _ := excelize.CoordinatesToCellName(1, row+3)
		rateCell, _ := excelize.CoordinatesToCellName(2, row+3)
		f.SetCellValue(SportsbookSheet, nameCell, r.Product)
		f.SetCellValue(SportsbookSheet, rateCell, r.Rate)
		f.SetCellStyle(SportsbookSheet, rateCell, rateCell, rateStyle)
	}

	f.SetActiveSheet(0)
	ok = true
	return f, nil
}

// writeHeader puts the bracket label in A1 and the bold column headers on
// row 2.
func writeHeader(f *excelize.File, sheet, label string, headers []string, style int) error {
	if err := f.SetCellValue(sheet, "A1", label); err != nil {
		return fmt.Errorf("write label: %w", err)
	}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 2)
		f.SetCellValue(sheet, cell, header)
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 2)
	return f.SetCellStyle(sheet, "A1", last, style)
}

// Write streams the workbook for the bracket to w.
func Write(w io.Writer, cat *pricing.Catalog, b pricing.RevenueBracket) error {
	f, err := Workbook(cat, b)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("export.Write: %w", err)
	}
	return nil
}

// Filename is the report name used for a bracket exported at t.
func Filename(b pricing.RevenueBracket, t time.Time) string {
	names := map[pricing.RevenueBracket]string{
		pricing.BracketLow:  "0-1m",
		pricing.BracketMid:  "1-3m",
		pricing.BracketHigh: "3m-plus",
	}
	return fmt.Sprintf("pricing_%s_%s.xlsx", names[b], t.Format("20060102_1504"))
}

// SaveFile writes the workbook under dir and returns its path.
func SaveFile(dir string, cat *pricing.Catalog, b pricing.RevenueBracket, t time.Time) (string, error) {
	const operation = "export.SaveFile"

	f, err := Workbook(cat, b)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%s: failed to create reports directory: %w", operation, err)
	}

	path := filepath.Join(dir, Filename(b, t))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("%s: failed to save Excel file: %w", operation, err)
	}
	return path, nil
}
