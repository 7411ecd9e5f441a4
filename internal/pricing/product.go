package pricing

import (
	"fmt"
	"strings"
)

// Product identifies which catalog is shown. ProductNone is the zero value.
type Product int

const (
	ProductNone Product = iota
	ProductCasino
	ProductSportsbook
)

func (p Product) Valid() bool {
	return p >= ProductNone && p <= ProductSportsbook
}

func (p Product) String() string {
	switch p {
	case ProductNone:
		return "none"
	case ProductCasino:
		return "casino"
	case ProductSportsbook:
		return "sportsbook"
	default:
		return fmt.Sprintf("product(%d)", int(p))
	}
}

// Title is the tab label.
func (p Product) Title() string {
	switch p {
	case ProductCasino:
		return "Casino"
	case ProductSportsbook:
		return "Sportsbook"
	default:
		return ""
	}
}

// ParseProduct accepts "casino" or "sportsbook". "none" is rejected: it is
// never a user choice.
func ParseProduct(s string) (Product, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "casino":
		return ProductCasino, nil
	case "sportsbook":
		return ProductSportsbook, nil
	default:
		return ProductNone, fmt.Errorf("unknown product %q", s)
	}
}

func (p Product) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("marshal %s: %w", p, ErrContractViolation)
	}
	return []byte(p.String()), nil
}

func (p *Product) UnmarshalText(text []byte) error {
	if string(text) == "none" || len(text) == 0 {
		*p = ProductNone
		return nil
	}
	v, err := ParseProduct(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
