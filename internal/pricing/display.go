package pricing

// Cell is one rendered table cell.
type Cell struct {
	Column  string
	Header  string
	Text    string
	Value   int
	Numeric bool
	Present bool
}

// CasinoDisplayRow is a casino row with every column already rendered.
type CasinoDisplayRow struct {
	Product string
	Cells   []Cell
}

// CardCells returns the cells shown in the card layout: every rate column,
// with the premium fee dropped when it is missing or zero.
func (r CasinoDisplayRow) CardCells() []Cell {
	cells := make([]Cell, 0, len(r.Cells))
	for _, c := range r.Cells {
		if c.Column == ColumnProduct {
			continue
		}
		if c.Column == ColumnPremiumFee && (!c.Present || c.Text == "0%") {
			continue
		}
		cells = append(cells, c)
	}
	return cells
}

type SportsbookDisplayRow struct {
	Product  string
	RevShare string
	Rate     int
}

// CasinoHeaders returns the formatted casino table headers.
func CasinoHeaders() []string {
	headers := make([]string, len(CasinoColumns))
	for i, col := range CasinoColumns {
		headers[i] = FormatColumnHeader(col)
	}
	return headers
}

// SportsbookHeaders returns the sportsbook table headers.
func SportsbookHeaders() []string {
	return []string{ColumnProduct, "Rev Share"}
}

// CasinoDisplayRows renders the casino catalog for the bracket.
func CasinoDisplayRows(rows []CasinoPriceRow, b RevenueBracket) ([]CasinoDisplayRow, error) {
	if err := CheckBracket(b); err != nil {
		return nil, err
	}

	out := make([]CasinoDisplayRow, 0, len(rows))
	for _, row := range rows {
		dr := CasinoDisplayRow{
			Product: row.Product,
			Cells:   make([]Cell, 0, len(CasinoColumns)),
		}
		for _, col := range CasinoColumns {
			text, ok := CasinoCellDisplay(row, col, b)
			cell := Cell{
				Column:  col,
				Header:  FormatColumnHeader(col),
				Text:    text,
				Numeric: col != ColumnProduct && ok,
				Present: ok,
			}
			if cell.Numeric {
				base, _ := row.Rate(col)
				cell.Value = CasinoRate(base, col, b)
			}
			dr.Cells = append(dr.Cells, cell)
		}
		out = append(out, dr)
	}
	return out, nil
}

// SportsbookDisplayRows renders the sportsbook catalog for the bracket.
func SportsbookDisplayRows(rows []SportsbookPriceRow, b RevenueBracket) ([]SportsbookDisplayRow, error) {
	if err := CheckBracket(b); err != nil {
		return nil, err
	}

	out := make([]SportsbookDisplayRow, 0, len(rows))
	for _, row := range rows {
		rate := SportsbookRate(row, b)
		out = append(out, SportsbookDisplayRow{
			Product:  row.Product,
			RevShare: percent(rate),
			Rate:     rate,
		})
	}
	return out, nil
}
