package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MinorUnit is one penny, the tolerance used when deciding whether a till balances.
var MinorUnit = decimal.New(1, -2)

// Bounds on accepted amounts. maxParsedScale caps the raw exponent before any
// comparison rescales the value.
const (
	MaxAmountScale = 4
	maxAmountExp   = 9
	maxParsedScale = 18
)

// MaxAmount is the largest amount accepted anywhere in a cash up.
var MaxAmount = decimal.New(1, maxAmountExp)

// CheckAmountRange rejects amounts with too many decimal places or too large a magnitude.
func CheckAmountRange(what string, amount decimal.Decimal) error {
	exp := amount.Exponent()
	if exp < -maxParsedScale || exp > maxAmountExp {
		return invalidf("%s is out of range", what)
	}
	if exp < -MaxAmountScale && !amount.Equal(amount.Truncate(MaxAmountScale)) {
		return invalidf("%s has more than %d decimal places", what, MaxAmountScale)
	}
	if amount.Abs().GreaterThan(MaxAmount) {
		return invalidf("%s must not exceed %s", what, MaxAmount.String())
	}
	return nil
}

// ParseAmount parses a non-negative currency amount such as "12.50" or "£12.50".
func ParseAmount(s string) (decimal.Decimal, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "£")
	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, invalidf("could not parse amount '%s'", s)
	}
	if err := CheckAmountRange("amount", amount); err != nil {
		return decimal.Zero, err
	}
	if amount.IsNegative() {
		return decimal.Zero, invalidf("amount '%s' must not be negative", s)
	}
	return amount, nil
}

// FormatAmount renders an amount at display precision, e.g. "£130.00".
func FormatAmount(symbol string, amount decimal.Decimal) string {
	return symbol + amount.StringFixed(2)
}
