package domain

import "github.com/shopspring/decimal"

// Denomination is a single coin or note the till holds.
type Denomination struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// DenominationTable lists denominations from the smallest coin to the largest note.
type DenominationTable []Denomination

// DefaultDenominations returns the twelve sterling denominations, 1p to £50.
func DefaultDenominations() DenominationTable {
	return DenominationTable{
		{Label: "1p", Value: decimal.RequireFromString("0.01")},
		{Label: "2p", Value: decimal.RequireFromString("0.02")},
		{Label: "5p", Value: decimal.RequireFromString("0.05")},
		{Label: "10p", Value: decimal.RequireFromString("0.10")},
		{Label: "20p", Value: decimal.RequireFromString("0.20")},
		{Label: "50p", Value: decimal.RequireFromString("0.50")},
		{Label: "£1", Value: decimal.RequireFromString("1.00")},
		{Label: "£2", Value: decimal.RequireFromString("2.00")},
		{Label: "£5", Value: decimal.RequireFromString("5.00")},
		{Label: "£10", Value: decimal.RequireFromString("10.00")},
		{Label: "£20", Value: decimal.RequireFromString("20.00")},
		{Label: "£50", Value: decimal.RequireFromString("50.00")},
	}
}

// DefaultStartingFloat is the amount left in the till after bagging.
func DefaultStartingFloat() decimal.Decimal {
	return decimal.RequireFromString("200.00")
}

// Validate checks the table is non-empty, strictly ascending and uniquely labelled.
func (t DenominationTable) Validate() error {
	if len(t) == 0 {
		return invalidf("denomination table is empty")
	}
	seen := make(map[string]bool, len(t))
	for i, d := range t {
		if d.Label == "" {
			return invalidf("denomination #%d has no label", i+1)
		}
		if seen[d.Label] {
			return invalidf("duplicate denomination '%s'", d.Label)
		}
		seen[d.Label] = true
		if !d.Value.IsPositive() {
			return invalidf("denomination '%s' must have a positive value", d.Label)
		}
		if i > 0 && !d.Value.GreaterThan(t[i-1].Value) {
			return invalidf("denomination '%s' is not larger than '%s'", d.Label, t[i-1].Label)
		}
	}
	return nil
}

// Index returns the position of label in the table, or -1.
func (t DenominationTable) Index(label string) int {
	for i, d := range t {
		if d.Label == label {
			return i
		}
	}
	return -1
}
