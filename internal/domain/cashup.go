package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CashCount holds the number of each denomination counted, in table order.
type CashCount []int64

// NewCashCount returns an all-zero count sized for table.
func NewCashCount(table DenominationTable) CashCount {
	return make(CashCount, len(table))
}

// Validate checks the count matches the table and holds no negative values.
func (c CashCount) Validate(table DenominationTable) error {
	if len(c) != len(table) {
		return invalidf("expected %d denomination counts, got %d", len(table), len(c))
	}
	for i, n := range c {
		if n < 0 {
			return invalidf("count for %s must not be negative, got %d", table[i].Label, n)
		}
	}
	return nil
}

// With returns a copy of the count with index i set to n. The receiver is unchanged.
func (c CashCount) With(i int, n int64) CashCount {
	out := slices.Clone(c)
	out[i] = n
	return out
}

// Receipts are card-receipt slips, kept in entry order for display.
type Receipts []decimal.Decimal

// Total sums all receipts.
func (r Receipts) Total() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range r {
		total = total.Add(amount)
	}
	return total
}

// Validate rejects negative receipts.
func (r Receipts) Validate() error {
	for i, amount := range r {
		if err := CheckAmountRange(fmt.Sprintf("receipt #%d", i+1), amount); err != nil {
			return err
		}
		if amount.IsNegative() {
			return invalidf("receipt #%d must not be negative, got %s", i+1, amount.String())
		}
	}
	return nil
}

// CashInEntry is cash already sitting in the till that was neither counted nor a receipt,
// e.g. air hockey machine takings or a float top-up. It always stays in the till.
type CashInEntry struct {
	Title  string          `json:"title"`
	Amount decimal.Decimal `json:"amount"`
}

// CashInEntries keeps cash-in entries in entry order.
type CashInEntries []CashInEntry

// Total sums all entries.
func (e CashInEntries) Total() decimal.Decimal {
	total := decimal.Zero
	for _, entry := range e {
		total = total.Add(entry.Amount)
	}
	return total
}

// Validate requires a title and a non-negative amount on every entry.
func (e CashInEntries) Validate() error {
	for i, entry := range e {
		if strings.TrimSpace(entry.Title) == "" {
			return invalidf("cash-in entry #%d has no title", i+1)
		}
		if err := CheckAmountRange(fmt.Sprintf("cash-in entry '%s'", entry.Title), entry.Amount); err != nil {
			return err
		}
		if entry.Amount.IsNegative() {
			return invalidf("cash-in entry '%s' must not be negative, got %s", entry.Title, entry.Amount.String())
		}
	}
	return nil
}

// CashUp is one end-of-day reconciliation request.
type CashUp struct {
	Date            time.Time       `json:"date"`
	Counts          CashCount       `json:"cash_counts"`
	Receipts        Receipts        `json:"receipt_amounts"`
	CashIn          CashInEntries   `json:"cash_in"`
	ExpectedTakings decimal.Decimal `json:"expected_takings"`
}

// Validate checks every part of the request against table.
func (c CashUp) Validate(table DenominationTable) error {
	if err := c.Counts.Validate(table); err != nil {
		return err
	}
	if err := c.Receipts.Validate(); err != nil {
		return err
	}
	if err := c.CashIn.Validate(); err != nil {
		return err
	}
	if err := CheckAmountRange("expected takings", c.ExpectedTakings); err != nil {
		return err
	}
	if c.ExpectedTakings.IsNegative() {
		return invalidf("expected takings must not be negative, got %s", c.ExpectedTakings.String())
	}
	return nil
}
