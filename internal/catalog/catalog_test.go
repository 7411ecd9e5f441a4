package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"pricing-bot/internal/config"
	"pricing-bot/internal/pricing"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFileSource_JSONAndYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "casino-pricing.json", `[
		{"Product": "Slots", "ROW": 10, "Asia - Korea": 12, "Branded/Premium Games Additional Fee": 5},
		{"Product": "Crash", "ROW": 8}
	]`)
	writeFile(t, dir, "sportsbook-pricing.yaml", `
- Product: Football
  tier1_0_1M: 5
  tier2_1_2M: 6
  tier3_2_3M: 7
`)

	cat, err := Load(context.Background(), NewFileSource(dir))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cat.Casino) != 2 || len(cat.Sportsbook) != 1 {
		t.Fatalf("catalog = %+v", cat)
	}

	slots := cat.Casino[0]
	if v, ok := slots.Rate(pricing.ColumnAsiaKorea); !ok || v != 12 {
		t.Errorf("Korea = %d, %v", v, ok)
	}
	if _, ok := cat.Casino[1].Rate(pricing.ColumnPremiumFee); ok {
		t.Error("missing premium fee decoded as present")
	}
	if got := cat.Sportsbook[0]; got.Tier2 != 6 || got.Tier3 != 7 {
		t.Errorf("sportsbook row = %+v", got)
	}
}

func TestFileSource_Missing(t *testing.T) {
	_, err := NewFileSource(t.TempDir()).LoadCatalog(context.Background())
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want ErrNotExist", err)
	}
}

func TestLoad_RejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "casino-pricing.json", `[{"Product": "", "ROW": 1}]`)
	writeFile(t, dir, "sportsbook-pricing.json", `[]`)

	_, err := Load(context.Background(), NewFileSource(dir))
	if !errors.Is(err, pricing.ErrInvalidCatalog) {
		t.Errorf("err = %v, want ErrInvalidCatalog", err)
	}
}

func TestLoad_BundledData(t *testing.T) {
	cat, err := Load(context.Background(), NewFileSource(filepath.Join("..", "..", "data")))
	if err != nil {
		t.Fatalf("bundled catalog: %v", err)
	}
	if len(cat.Casino) == 0 || len(cat.Sportsbook) == 0 {
		t.Error("bundled catalog is empty")
	}
}

func TestOpen_File(t *testing.T) {
	cfg := config.Catalog{CatalogSource: config.CatalogSourceFile, CatalogDir: filepath.Join("..", "..", "data")}

	src, closeFn, err := Open(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer closeFn()

	if _, ok := src.(*FileSource); !ok {
		t.Errorf("source = %T, want *FileSource", src)
	}
}

func TestOpen_Unknown(t *testing.T) {
	if _, _, err := Open(context.Background(), config.Catalog{CatalogSource: "s3"}, zap.NewNop()); err == nil {
		t.Error("expected error for unknown source")
	}
}
