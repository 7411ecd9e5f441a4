package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"pricing-bot/internal/pricing"
)

func testCatalog() *pricing.Catalog {
	return &pricing.Catalog{
		Casino: []pricing.CasinoPriceRow{
			{Product: "Slots", ROW: pricing.Rate(10), PremiumFee: pricing.Rate(5)},
			{Product: "Table Games", ROW: pricing.Rate(8)},
		},
		Sportsbook: []pricing.SportsbookPriceRow{
			{Product: "Football", Tier1: 5, Tier2: 6, Tier3: 7},
		},
	}
}

func raw(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		t.Fatalf("GetCellValue(%s!%s): %v", sheet, cell, err)
	}
	return v
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, testCatalog(), pricing.BracketLow); err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != CasinoSheet || sheets[1] != SportsbookSheet {
		t.Fatalf("sheets = %v", sheets)
	}

	tests := []struct {
		sheet, cell, want string
	}{
		{CasinoSheet, "A1", "Monthly GGR: $0 - $1,000,000"},
		{CasinoSheet, "A2", "Product"},
		{CasinoSheet, "A3", "Slots"},
		{CasinoSheet, "B3", "14"},
		{CasinoSheet, "J3", "5"},
		{CasinoSheet, "B4", "12"},
		{CasinoSheet, "J4", ""},
		{SportsbookSheet, "B2", "Rev Share"},
		{SportsbookSheet, "A3", "Football"},
		{SportsbookSheet, "B3", "9"},
	}
	for _, tt := range tests {
		if got := raw(t, f, tt.sheet, tt.cell); got != tt.want {
			t.Errorf("%s!%s = %q, want %q", tt.sheet, tt.cell, got, tt.want)
		}
	}
}

func TestWorkbook_InvalidBracket(t *testing.T) {
	_, err := Workbook(testCatalog(), pricing.RevenueBracket(9))
	if !errors.Is(err, pricing.ErrContractViolation) {
		t.Errorf("err = %v, want ErrContractViolation", err)
	}
}

func TestSaveFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	at := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	path, err := SaveFile(dir, testCatalog(), pricing.BracketHigh, at)
	if err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	if filepath.Base(path) != "pricing_3m-plus_20240301_0930.xlsx" {
		t.Errorf("path = %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("stat: %v", err)
	}
}
