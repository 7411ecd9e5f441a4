package viewstate

import (
	"errors"
	"testing"

	"pricing-bot/internal/pricing"
)

func testCatalog() *pricing.Catalog {
	return &pricing.Catalog{
		Casino: []pricing.CasinoPriceRow{
			{Product: "Slots", ROW: pricing.Rate(10), PremiumFee: pricing.Rate(5)},
		},
		Sportsbook: []pricing.SportsbookPriceRow{
			{Product: "Football", Tier1: 5, Tier2: 6, Tier3: 7},
		},
	}
}

func TestDerive_InputScreen(t *testing.T) {
	vm, err := Derive(State{View: ViewInput, Product: pricing.ProductCasino, Bracket: pricing.BracketMid}, nil)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if vm.BracketLabel != "$1,000,000 - $3,000,000" {
		t.Errorf("label = %q", vm.BracketLabel)
	}
	if len(vm.Options) != 3 {
		t.Fatalf("options = %d, want 3", len(vm.Options))
	}
	for _, o := range vm.Options {
		if o.Selected != (o.Bracket == pricing.BracketMid) {
			t.Errorf("option %s selected = %v", o.Bracket, o.Selected)
		}
	}
	if vm.Casino != nil || vm.Sportsbook != nil {
		t.Error("tables must be empty outside the pricing view")
	}
}

func TestDerive_CasinoPricing(t *testing.T) {
	c := New()
	mustDo(t, c.SelectProduct(pricing.ProductCasino))
	mustDo(t, c.Submit())

	vm, err := Derive(c.State(), testCatalog())
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if len(vm.Casino) != 1 {
		t.Fatalf("casino rows = %d", len(vm.Casino))
	}
	if got := vm.Casino[0].Cells[1].Text; got != "14%" {
		t.Errorf("ROW = %q, want 14%%", got)
	}
	if got := vm.Casino[0].Cells[len(vm.Casino[0].Cells)-1].Text; got != "5%" {
		t.Errorf("premium = %q, want 5%%", got)
	}
	if vm.Sportsbook != nil {
		t.Error("sportsbook table filled for casino tab")
	}
	if vm.CasinoHeaders[len(vm.CasinoHeaders)-1] != "Premium Games Fee" {
		t.Errorf("headers = %v", vm.CasinoHeaders)
	}
}

func TestDerive_SportsbookAfterTabSwitch(t *testing.T) {
	c := New()
	mustDo(t, c.SelectProduct(pricing.ProductCasino))
	mustDo(t, c.ChooseBracket(pricing.BracketHigh))
	mustDo(t, c.Submit())
	mustDo(t, c.SwitchTab(pricing.ProductSportsbook))

	vm, err := Derive(c.State(), testCatalog())
	if err != nil {
		t.Fatal(err)
	}
	if len(vm.Sportsbook) != 1 || vm.Sportsbook[0].RevShare != "9%" {
		t.Errorf("sportsbook = %+v, want 9%%", vm.Sportsbook)
	}
}

func TestDerive_ContractViolation(t *testing.T) {
	_, err := Derive(State{View: ViewPricing, Bracket: pricing.BracketLow}, testCatalog())
	if !errors.Is(err, pricing.ErrContractViolation) {
		t.Errorf("err = %v, want ErrContractViolation", err)
	}

	_, err = Derive(State{View: ViewPricing, Product: pricing.ProductCasino, Bracket: pricing.BracketLow}, nil)
	if !errors.Is(err, pricing.ErrContractViolation) {
		t.Errorf("nil catalog err = %v", err)
	}
}

func TestParseAction(t *testing.T) {
	actions := []Action{
		SelectProduct(pricing.ProductCasino),
		SelectProduct(pricing.ProductSportsbook),
		ChooseBracket(pricing.BracketLow),
		ChooseBracket(pricing.BracketMid),
		ChooseBracket(pricing.BracketHigh),
		Submit,
		Back,
		EditBracket,
		SwitchTab(pricing.ProductSportsbook),
	}
	for _, a := range actions {
		got, err := ParseAction(a.String())
		if err != nil {
			t.Errorf("ParseAction(%q): %v", a.String(), err)
			continue
		}
		if got != a {
			t.Errorf("ParseAction(%q) = %+v, want %+v", a.String(), got, a)
		}
	}

	for _, bad := range []string{"", "product", "product:none", "bracket:9M", "submit:now", "texture:1"} {
		if _, err := ParseAction(bad); err == nil {
			t.Errorf("ParseAction(%q) expected error", bad)
		}
	}
}
