package pricing

import (
	"errors"
	"testing"
)

func TestBonusForBracket(t *testing.T) {
	want := map[RevenueBracket]int{
		BracketLow:  4,
		BracketMid:  3,
		BracketHigh: 2,
	}
	prev := 1 << 30
	for _, b := range Brackets {
		got := BonusForBracket(b)
		if got != want[b] {
			t.Errorf("BonusForBracket(%s) = %d, want %d", b, got, want[b])
		}
		if got > prev {
			t.Errorf("bonus increased at %s: %d > %d", b, got, prev)
		}
		prev = got
	}
}

func TestBonusForValue_ZeroGGR(t *testing.T) {
	if got := bonusForValue(0); got != 0 {
		t.Errorf("bonusForValue(0) = %d, want 0", got)
	}
}

func TestRates_PanicOnInvalidBracket(t *testing.T) {
	row := SportsbookPriceRow{Product: "Football", Tier1: 5, Tier2: 6, Tier3: 7}
	tests := map[string]func(){
		"BonusForBracket": func() { BonusForBracket(RevenueBracket(42)) },
		"CasinoRate":      func() { CasinoRate(10, ColumnROW, RevenueBracket(-1)) },
		"CasinoRate fee":  func() { CasinoRate(5, ColumnPremiumFee, RevenueBracket(3)) },
		"SportsbookRate":  func() { SportsbookRate(row, RevenueBracket(7)) },
	}
	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				err, ok := recover().(error)
				if !ok || !errors.Is(err, ErrContractViolation) {
					t.Errorf("recovered %v, want ErrContractViolation", err)
				}
			}()
			fn()
		})
	}
}

func TestRepresentativeValue(t *testing.T) {
	tests := []struct {
		bracket RevenueBracket
		want    int
	}{
		{BracketLow, 999999},
		{BracketMid, 2000000},
		{BracketHigh, 3000001},
	}
	for _, tt := range tests {
		if got := RepresentativeValue(tt.bracket); got != tt.want {
			t.Errorf("RepresentativeValue(%s) = %d, want %d", tt.bracket, got, tt.want)
		}
	}
}

func TestCasinoDisplayValue(t *testing.T) {
	for _, b := range Brackets {
		if got := CasinoDisplayValue(5, ColumnPremiumFee, b); got != "5%" {
			t.Errorf("premium fee under %s = %q, want %q", b, got, "5%")
		}

		want := percent(10 + BonusForBracket(b))
		for _, col := range CasinoColumns[1 : len(CasinoColumns)-1] {
			if got := CasinoDisplayValue(10, col, b); got != want {
				t.Errorf("CasinoDisplayValue(10, %q, %s) = %q, want %q", col, b, got, want)
			}
		}
	}
}

func TestCasinoCellDisplay_Slots(t *testing.T) {
	row := CasinoPriceRow{Product: "Slots", ROW: Rate(10), PremiumFee: Rate(5)}

	cases := []struct {
		column string
		text   string
		ok     bool
	}{
		{ColumnProduct, "Slots", true},
		{ColumnROW, "14%", true},
		{ColumnPremiumFee, "5%", true},
		{ColumnAsiaKorea, "", false},
	}
	for _, c := range cases {
		text, ok := CasinoCellDisplay(row, c.column, BracketLow)
		if text != c.text || ok != c.ok {
			t.Errorf("CasinoCellDisplay(%q) = (%q, %v), want (%q, %v)", c.column, text, ok, c.text, c.ok)
		}
	}
}

func TestSportsbookRate(t *testing.T) {
	row := SportsbookPriceRow{Product: "Football", Tier1: 5, Tier2: 6, Tier3: 7}

	tests := []struct {
		bracket RevenueBracket
		want    int
		text    string
	}{
		{BracketLow, 9, "9%"},  // 5 + 4
		{BracketMid, 9, "9%"},  // 6 + 3
		{BracketHigh, 9, "9%"}, // 7 + 2
	}
	for _, tt := range tests {
		if got := SportsbookRate(row, tt.bracket); got != tt.want {
			t.Errorf("SportsbookRate(%s) = %d, want %d", tt.bracket, got, tt.want)
		}
		if got := SportsbookDisplayValue(row, tt.bracket); got != tt.text {
			t.Errorf("SportsbookDisplayValue(%s) = %q, want %q", tt.bracket, got, tt.text)
		}
	}
}

func TestSportsbookRate_TiersAreIndependent(t *testing.T) {
	row := SportsbookPriceRow{Product: "Tennis", Tier1: 1, Tier2: 20, Tier3: 300}

	if got := SportsbookRate(row, BracketLow); got != row.Tier1+4 {
		t.Errorf("low = %d, want %d", got, row.Tier1+4)
	}
	if got := SportsbookRate(row, BracketMid); got != row.Tier2+3 {
		t.Errorf("mid = %d, want %d", got, row.Tier2+3)
	}
	if got := SportsbookRate(row, BracketHigh); got != row.Tier3+2 {
		t.Errorf("high = %d, want %d", got, row.Tier3+2)
	}
}

func TestFormatColumnHeader(t *testing.T) {
	tests := map[string]string{
		ColumnProduct:      "Product",
		ColumnROW:          "ROW",
		ColumnAsia:         "Asia",
		ColumnAsiaKorea:    "Korea",
		ColumnAsiaMalaysia: "Malaysia",
		ColumnPremiumFee:   "Premium Games Fee",
	}
	for in, want := range tests {
		if got := FormatColumnHeader(in); got != want {
			t.Errorf("FormatColumnHeader(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseBracket(t *testing.T) {
	for _, b := range Brackets {
		got, err := ParseBracket(b.String())
		if err != nil {
			t.Fatalf("ParseBracket(%q): %v", b.String(), err)
		}
		if got != b {
			t.Errorf("ParseBracket(%q) = %s, want %s", b.String(), got, b)
		}
	}
	if _, err := ParseBracket("5M"); err == nil {
		t.Error("expected error for unknown bracket")
	}
}

func TestFormatBracket(t *testing.T) {
	if got := FormatBracket(BracketLow); got != "$0 - $1,000,000" {
		t.Errorf("FormatBracket(low) = %q", got)
	}
	if got := FormatBracket(BracketHigh); got != "$3,000,000+" {
		t.Errorf("FormatBracket(high) = %q", got)
	}
}

func TestCheckBracket(t *testing.T) {
	if err := CheckBracket(BracketMid); err != nil {
		t.Errorf("CheckBracket(mid) = %v", err)
	}
	err := CheckBracket(RevenueBracket(-1))
	if !errors.Is(err, ErrContractViolation) {
		t.Errorf("CheckBracket(-1) = %v, want ErrContractViolation", err)
	}
}
