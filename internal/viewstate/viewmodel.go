package viewstate

import (
	"fmt"

	"pricing-bot/internal/pricing"
)

// BracketOption is one choice on the input screen.
type BracketOption struct {
	Bracket  pricing.RevenueBracket
	Label    string
	Selected bool
}

// ViewModel is everything a presentation layer needs to draw one screen.
// Only the table for the active product is filled, and only on the pricing
// screen.
type ViewModel struct {
	View          View
	ActiveProduct pricing.Product
	Bracket       pricing.RevenueBracket
	BracketLabel  string
	Options       []BracketOption

	CasinoHeaders     []string
	Casino            []pricing.CasinoDisplayRow
	SportsbookHeaders []string
	Sportsbook        []pricing.SportsbookDisplayRow
}

// Derive computes the view model for s. It is pure; call it after every
// transition.
func Derive(s State, catalog *pricing.Catalog) (ViewModel, error) {
	const operation = "viewstate.Derive"

	if err := s.Validate(); err != nil {
		return ViewModel{}, fmt.Errorf("%s: %w", operation, err)
	}

	vm := ViewModel{
		View:          s.View,
		ActiveProduct: s.Product,
		Bracket:       s.Bracket,
		BracketLabel:  pricing.FormatBracket(s.Bracket),
		Options:       make([]BracketOption, 0, len(pricing.Brackets)),
	}
	for _, b := range pricing.Brackets {
		vm.Options = append(vm.Options, BracketOption{
			Bracket:  b,
			Label:    pricing.FormatBracket(b),
			Selected: b == s.Bracket,
		})
	}

	if s.View != ViewPricing {
		return vm, nil
	}
	if catalog == nil {
		return ViewModel{}, fmt.Errorf("%s: nil catalog: %w", operation, pricing.ErrContractViolation)
	}

	var err error
	switch s.Product {
	case pricing.ProductCasino:
		vm.CasinoHeaders = pricing.CasinoHeaders()
		vm.Casino, err = pricing.CasinoDisplayRows(catalog.Casino, s.Bracket)
	case pricing.ProductSportsbook:
		vm.SportsbookHeaders = pricing.SportsbookHeaders()
		vm.Sportsbook, err = pricing.SportsbookDisplayRows(catalog.Sportsbook, s.Bracket)
	}
	if err != nil {
		return ViewModel{}, fmt.Errorf("%s: %w", operation, err)
	}
	return vm, nil
}
