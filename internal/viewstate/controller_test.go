package viewstate

import (
	"encoding/json"
	"errors"
	"testing"

	"pricing-bot/internal/pricing"
)

func TestController_InitialState(t *testing.T) {
	c := New()
	if c.View() != ViewSelection {
		t.Errorf("view = %s, want selection", c.View())
	}
	if c.ActiveProduct() != pricing.ProductNone {
		t.Errorf("product = %s, want none", c.ActiveProduct())
	}
	if c.Bracket() != pricing.BracketLow {
		t.Errorf("bracket = %s, want 0-1M", c.Bracket())
	}
}

func TestController_BackClearsProduct(t *testing.T) {
	c := New()
	mustDo(t, c.SelectProduct(pricing.ProductCasino))
	if c.View() != ViewInput || c.ActiveProduct() != pricing.ProductCasino {
		t.Fatalf("after select: %+v", c.State())
	}

	mustDo(t, c.Back())
	if c.View() != ViewSelection {
		t.Errorf("view = %s, want selection", c.View())
	}
	if c.ActiveProduct() != pricing.ProductNone {
		t.Errorf("product = %s, want none", c.ActiveProduct())
	}
}

func TestController_FullFlow(t *testing.T) {
	c := New()
	mustDo(t, c.SelectProduct(pricing.ProductSportsbook))
	mustDo(t, c.ChooseBracket(pricing.BracketHigh))
	if c.View() != ViewInput {
		t.Fatalf("choose bracket changed view to %s", c.View())
	}
	mustDo(t, c.Submit())
	if c.View() != ViewPricing {
		t.Fatalf("view = %s, want pricing", c.View())
	}

	mustDo(t, c.SwitchTab(pricing.ProductCasino))
	if c.View() != ViewPricing {
		t.Errorf("switch tab left pricing view: %s", c.View())
	}
	if c.ActiveProduct() != pricing.ProductCasino {
		t.Errorf("product = %s, want casino", c.ActiveProduct())
	}
	if c.Bracket() != pricing.BracketHigh {
		t.Errorf("switch tab changed bracket to %s", c.Bracket())
	}

	mustDo(t, c.EditBracket())
	if c.View() != ViewInput || c.ActiveProduct() != pricing.ProductCasino {
		t.Errorf("after edit: %+v", c.State())
	}

	mustDo(t, c.Back())
	if c.Bracket() != pricing.BracketHigh {
		t.Errorf("bracket not kept across back: %s", c.Bracket())
	}
}

func TestController_IllegalTransitions(t *testing.T) {
	tests := []struct {
		name  string
		setup []Action
		act   Action
	}{
		{"submit from selection", nil, Submit},
		{"edit from selection", nil, EditBracket},
		{"back from selection", nil, Back},
		{"tab from selection", nil, SwitchTab(pricing.ProductCasino)},
		{"choose from selection", nil, ChooseBracket(pricing.BracketMid)},
		{"select from input", []Action{SelectProduct(pricing.ProductCasino)}, SelectProduct(pricing.ProductSportsbook)},
		{"edit from input", []Action{SelectProduct(pricing.ProductCasino)}, EditBracket},
		{"back from pricing", []Action{SelectProduct(pricing.ProductCasino), Submit}, Back},
		{"choose from pricing", []Action{SelectProduct(pricing.ProductCasino), Submit}, ChooseBracket(pricing.BracketHigh)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			for _, a := range tt.setup {
				mustDo(t, c.Apply(a))
			}
			before := c.State()

			err := c.Apply(tt.act)
			if !errors.Is(err, ErrIllegalTransition) {
				t.Fatalf("err = %v, want ErrIllegalTransition", err)
			}
			if c.State() != before {
				t.Errorf("state changed on rejected transition: %+v -> %+v", before, c.State())
			}
		})
	}
}

func TestController_RejectsNoneProduct(t *testing.T) {
	c := New()
	err := c.SelectProduct(pricing.ProductNone)
	if !errors.Is(err, pricing.ErrContractViolation) {
		t.Errorf("err = %v, want ErrContractViolation", err)
	}
	if c.View() != ViewSelection {
		t.Errorf("view = %s", c.View())
	}
}

func TestRestore(t *testing.T) {
	s := State{View: ViewPricing, Product: pricing.ProductSportsbook, Bracket: pricing.BracketMid}
	c, err := Restore(s)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if c.State() != s {
		t.Errorf("state = %+v, want %+v", c.State(), s)
	}

	bad := []State{
		{View: "menu", Bracket: pricing.BracketLow},
		{View: ViewPricing, Product: pricing.ProductNone, Bracket: pricing.BracketLow},
		{View: ViewInput, Product: pricing.Product(7), Bracket: pricing.BracketLow},
		{View: ViewInput, Bracket: pricing.RevenueBracket(5)},
	}
	for _, s := range bad {
		if _, err := Restore(s); !errors.Is(err, pricing.ErrContractViolation) {
			t.Errorf("Restore(%+v) err = %v", s, err)
		}
	}
}

func TestState_JSON(t *testing.T) {
	s := State{View: ViewInput, Product: pricing.ProductCasino, Bracket: pricing.BracketHigh}
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"view":"input","product":"casino","bracket":"3M+"}`
	if string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}

	var back State
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != s {
		t.Errorf("decoded %+v, want %+v", back, s)
	}
}

func mustDo(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("transition failed: %v", err)
	}
}
