package pricing

import (
	"errors"
	"fmt"
)

// Column names as they appear in catalog files and table headers.
const (
	ColumnProduct         = "Product"
	ColumnROW             = "ROW"
	ColumnAsia            = "Asia"
	ColumnAsiaPhilippines = "Asia - Philippines"
	ColumnAsiaKorea       = "Asia - Korea"
	ColumnAsiaIndia       = "Asia - India"
	ColumnAsiaJapan       = "Asia - Japan"
	ColumnAsiaChina       = "Asia - China"
	ColumnAsiaMalaysia    = "Asia - Malaysia"
	ColumnPremiumFee      = "Branded/Premium Games Additional Fee"
)

// CasinoColumns is the display order of the casino table.
var CasinoColumns = []string{
	ColumnProduct,
	ColumnROW,
	ColumnAsia,
	ColumnAsiaPhilippines,
	ColumnAsiaKorea,
	ColumnAsiaIndia,
	ColumnAsiaJapan,
	ColumnAsiaChina,
	ColumnAsiaMalaysia,
	ColumnPremiumFee,
}

// CasinoPriceRow holds one casino product's base rates. A nil rate is a
// missing cell.
type CasinoPriceRow struct {
	Product         string `json:"Product" yaml:"Product" db:"product"`
	ROW             *int   `json:"ROW,omitempty" yaml:"ROW,omitempty" db:"row_rate"`
	Asia            *int   `json:"Asia,omitempty" yaml:"Asia,omitempty" db:"asia"`
	AsiaPhilippines *int   `json:"Asia - Philippines,omitempty" yaml:"Asia - Philippines,omitempty" db:"asia_philippines"`
	AsiaKorea       *int   `json:"Asia - Korea,omitempty" yaml:"Asia - Korea,omitempty" db:"asia_korea"`
	AsiaIndia       *int   `json:"Asia - India,omitempty" yaml:"Asia - India,omitempty" db:"asia_india"`
	AsiaJapan       *int   `json:"Asia - Japan,omitempty" yaml:"Asia - Japan,omitempty" db:"asia_japan"`
	AsiaChina       *int   `json:"Asia - China,omitempty" yaml:"Asia - China,omitempty" db:"asia_china"`
	AsiaMalaysia    *int   `json:"Asia - Malaysia,omitempty" yaml:"Asia - Malaysia,omitempty" db:"asia_malaysia"`
	PremiumFee      *int   `json:"Branded/Premium Games Additional Fee,omitempty" yaml:"Branded/Premium Games Additional Fee,omitempty" db:"premium_fee"`
}

// Rate returns the base rate stored under column. ok is false for the
// Product column, unknown columns and missing cells.
func (r CasinoPriceRow) Rate(column string) (value int, ok bool) {
	var p *int
	switch column {
	case ColumnROW:
		p = r.ROW
	case ColumnAsia:
		p = r.Asia
	case ColumnAsiaPhilippines:
		p = r.AsiaPhilippines
	case ColumnAsiaKorea:
		p = r.AsiaKorea
	case ColumnAsiaIndia:
		p = r.AsiaIndia
	case ColumnAsiaJapan:
		p = r.AsiaJapan
	case ColumnAsiaChina:
		p = r.AsiaChina
	case ColumnAsiaMalaysia:
		p = r.AsiaMalaysia
	case ColumnPremiumFee:
		p = r.PremiumFee
	}
	if p == nil {
		return 0, false
	}
	return *p, true
}

// SportsbookPriceRow holds a sportsbook product's base tiers.
type SportsbookPriceRow struct {
	Product string `json:"Product" yaml:"Product" db:"product"`
	Tier1   int    `json:"tier1_0_1M" yaml:"tier1_0_1M" db:"tier1_0_1m"`
	Tier2   int    `json:"tier2_1_2M" yaml:"tier2_1_2M" db:"tier2_1_2m"`
	Tier3   int    `json:"tier3_2_3M" yaml:"tier3_2_3M" db:"tier3_2_3m"`
}

// Catalog is the pair of pricing tables loaded at startup. It is never
// mutated after Validate.
type Catalog struct {
	Casino     []CasinoPriceRow
	Sportsbook []SportsbookPriceRow
}

var ErrInvalidCatalog = errors.New("invalid catalog")

func (c *Catalog) Validate() error {
	const operation = "pricing.Catalog.Validate"

	for i, row := range c.Casino {
		if row.Product == "" {
			return fmt.Errorf("%s: casino row %d: empty product: %w", operation, i, ErrInvalidCatalog)
		}
		for _, col := range CasinoColumns[1:] {
			if v, ok := row.Rate(col); ok && v < 0 {
				return fmt.Errorf("%s: casino %q column %q: negative rate %d: %w",
					operation, row.Product, col, v, ErrInvalidCatalog)
			}
		}
	}

	for i, row := range c.Sportsbook {
		if row.Product == "" {
			return fmt.Errorf("%s: sportsbook row %d: empty product: %w", operation, i, ErrInvalidCatalog)
		}
		if row.Tier1 < 0 || row.Tier2 < 0 || row.Tier3 < 0 {
			return fmt.Errorf("%s: sportsbook %q: negative tier: %w", operation, row.Product, ErrInvalidCatalog)
		}
	}
	return nil
}

// Rate is a helper for building rows in code.
func Rate(v int) *int {
	return &v
}
