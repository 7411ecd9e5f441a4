package pricing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrContractViolation marks a caller bug, such as asking for rates of an
// unknown bracket. It is never a user error.
var ErrContractViolation = errors.New("pricing contract violation")

const premiumFeeLabel = "Premium Games Fee"

// BonusForBracket is the additive percentage for the bracket. It panics
// with ErrContractViolation for a bracket outside the enum.
func BonusForBracket(b RevenueBracket) int {
	mustBracket(b)
	return bonusForValue(RepresentativeValue(b))
}

// The last branch is unreachable for valid brackets since every
// representative value is positive. Kept so a zero GGR gets no bonus.
func bonusForValue(ggr int) int {
	switch {
	case ggr >= 3000000:
		return 2
	case ggr >= 1000000:
		return 3
	case ggr > 0:
		return 4
	default:
		return 0
	}
}

// CasinoRate is the displayed percentage for a casino base rate. The premium
// fee column is a flat fee and ignores the bonus. Like BonusForBracket it
// panics on an invalid bracket.
func CasinoRate(base int, column string, b RevenueBracket) int {
	mustBracket(b)
	if column == ColumnPremiumFee {
		return base
	}
	return base + BonusForBracket(b)
}

// CasinoDisplayValue is CasinoRate with the percent suffix.
func CasinoDisplayValue(base int, column string, b RevenueBracket) string {
	return percent(CasinoRate(base, column, b))
}

// CasinoCellDisplay renders a single cell of row. The Product column passes
// through as text; a missing rate renders empty with ok=false.
func CasinoCellDisplay(row CasinoPriceRow, column string, b RevenueBracket) (text string, ok bool) {
	if column == ColumnProduct {
		return row.Product, true
	}
	v, ok := row.Rate(column)
	if !ok {
		return "", false
	}
	return CasinoDisplayValue(v, column, b), true
}

// SportsbookRate is the revenue share percentage for row under the bracket.
// Unlike CasinoDisplayValue only the lowest range goes through
// BonusForBracket; the other ranges add fixed constants. It panics on an
// invalid bracket.
func SportsbookRate(row SportsbookPriceRow, b RevenueBracket) int {
	mustBracket(b)
	ggr := RepresentativeValue(b)
	switch {
	case ggr <= 1000000:
		return row.Tier1 + BonusForBracket(b)
	case ggr <= 2000000:
		return row.Tier2 + 3
	case ggr <= 3000000:
		return row.Tier3 + 3
	default:
		return row.Tier3 + 2
	}
}

// SportsbookDisplayValue is SportsbookRate with the percent suffix.
func SportsbookDisplayValue(row SportsbookPriceRow, b RevenueBracket) string {
	return percent(SportsbookRate(row, b))
}

// FormatColumnHeader shortens catalog column names for display.
func FormatColumnHeader(name string) string {
	if strings.HasPrefix(name, "Asia - ") {
		return strings.TrimPrefix(name, "Asia - ")
	}
	if name == ColumnPremiumFee {
		return premiumFeeLabel
	}
	return name
}

// CheckBracket returns ErrContractViolation for brackets outside the enum.
func CheckBracket(b RevenueBracket) error {
	if !b.Valid() {
		return fmt.Errorf("pricing: bracket %s: %w", b, ErrContractViolation)
	}
	return nil
}

// mustBracket guards the rate functions. Callers holding unchecked input
// use CheckBracket first.
func mustBracket(b RevenueBracket) {
	if err := CheckBracket(b); err != nil {
		panic(err)
	}
}

func percent(v int) string {
	return strconv.Itoa(v) + "%"
}
