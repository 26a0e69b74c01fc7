package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"till-reconciliation/internal/domain"
)

// AirHockeyTitle labels the cash-in entry built from the legacy air_hockey_earnings field.
const AirHockeyTitle = "Air hockey"

// CalculationRequest is the JSON body of /api/calculate and /api/reports.
// Amounts may be JSON numbers or strings.
type CalculationRequest struct {
	Date              string            `json:"date,omitempty"`
	CashCounts        []int64           `json:"cash_counts"`
	ReceiptAmounts    []decimal.Decimal `json:"receipt_amounts"`
	CashIn            []CashInRequest   `json:"cash_in"`
	AirHockeyEarnings *decimal.Decimal  `json:"air_hockey_earnings,omitempty"`
	ExpectedTakings   decimal.Decimal   `json:"expected_takings"`
}

// CashInRequest is a titled amount already sitting in the till.
type CashInRequest struct {
	Title  string          `json:"title"`
	Amount decimal.Decimal `json:"amount"`
}

// ToCashUp converts the request for the given table. Missing counts mean an empty till.
func (r CalculationRequest) ToCashUp(table domain.DenominationTable) (domain.CashUp, error) {
	cashUp := domain.CashUp{
		Counts:          domain.CashCount(r.CashCounts),
		Receipts:        domain.Receipts(r.ReceiptAmounts),
		ExpectedTakings: r.ExpectedTakings,
	}
	if len(r.CashCounts) == 0 {
		cashUp.Counts = domain.NewCashCount(table)
	}

	if r.Date != "" {
		date, err := domain.ParseDate(r.Date)
		if err != nil {
			return domain.CashUp{}, err
		}
		cashUp.Date = date
	}

	for _, entry := range r.CashIn {
		cashUp.CashIn = append(cashUp.CashIn, domain.CashInEntry{
			Title:  strings.TrimSpace(entry.Title),
			Amount: entry.Amount,
		})
	}
	if r.AirHockeyEarnings != nil && !r.AirHockeyEarnings.IsZero() {
		cashUp.CashIn = append(cashUp.CashIn, domain.CashInEntry{Title: AirHockeyTitle, Amount: *r.AirHockeyEarnings})
	}

	if err := cashUp.Validate(table); err != nil {
		return domain.CashUp{}, fmt.Errorf("invalid request: %w", err)
	}
	return cashUp, nil
}

// FormatDate renders t for JSON responses, or "" when unset.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}
