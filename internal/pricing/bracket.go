package pricing

import (
	"fmt"
	"strings"
)

// RevenueBracket is one of the fixed monthly GGR ranges.
type RevenueBracket int

const (
	BracketLow RevenueBracket = iota
	BracketMid
	BracketHigh
)

// Brackets lists every bracket in ascending GGR order.
var Brackets = []RevenueBracket{BracketLow, BracketMid, BracketHigh}

func (b RevenueBracket) Valid() bool {
	return b >= BracketLow && b <= BracketHigh
}

// String returns the wire identifier used in callbacks and catalogs.
func (b RevenueBracket) String() string {
	switch b {
	case BracketLow:
		return "0-1M"
	case BracketMid:
		return "1-3M"
	case BracketHigh:
		return "3M+"
	default:
		return fmt.Sprintf("bracket(%d)", int(b))
	}
}

func ParseBracket(s string) (RevenueBracket, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0-1m", "low":
		return BracketLow, nil
	case "1-3m", "mid":
		return BracketMid, nil
	case "3m+", "high":
		return BracketHigh, nil
	default:
		return 0, fmt.Errorf("unknown revenue bracket %q", s)
	}
}

// RepresentativeValue maps a bracket to the GGR figure the pricing rules
// are evaluated against. Unknown brackets map to 0.
func RepresentativeValue(b RevenueBracket) int {
	switch b {
	case BracketLow:
		return 999999
	case BracketMid:
		return 2000000
	case BracketHigh:
		return 3000001
	default:
		return 0
	}
}

// FormatBracket renders the bracket as shown to users.
func FormatBracket(b RevenueBracket) string {
	switch b {
	case BracketLow:
		return "$0 - $1,000,000"
	case BracketMid:
		return "$1,000,000 - $3,000,000"
	case BracketHigh:
		return "$3,000,000+"
	default:
		return ""
	}
}

func (b RevenueBracket) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("marshal %s: %w", b, ErrContractViolation)
	}
	return []byte(b.String()), nil
}

func (b *RevenueBracket) UnmarshalText(text []byte) error {
	v, err := ParseBracket(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}
