// Package engine reconciles a till count against the expected takings and works out
// how to bag up the excess. Every function is pure and safe for concurrent use.
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"till-reconciliation/internal/domain"
)

// ComputeTotal returns the value of counts priced against table.
func ComputeTotal(counts domain.CashCount, table domain.DenominationTable) (decimal.Decimal, error) {
	if err := counts.Validate(table); err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for i, d := range table {
		total = total.Add(d.Value.Mul(decimal.NewFromInt(counts[i])))
	}
	return total, nil
}

// Analyze compares what is in the till against the starting float plus expected takings.
// Cash-in entries are reported but left out of the till total: they are already inside
// the till and never count toward the float target.
func Analyze(cashUp domain.CashUp, startingFloat decimal.Decimal, table domain.DenominationTable) (domain.Analysis, error) {
	if err := domain.CheckAmountRange("starting float", startingFloat); err != nil {
		return domain.Analysis{}, err
	}
	if startingFloat.IsNegative() {
		return domain.Analysis{}, fmt.Errorf("%w: starting float must not be negative, got %s", domain.ErrInvalidInput, startingFloat.String())
	}
	if err := cashUp.Validate(table); err != nil {
		return domain.Analysis{}, err
	}

	totalCash, err := ComputeTotal(cashUp.Counts, table)
	if err != nil {
		return domain.Analysis{}, err
	}
	totalReceipts := cashUp.Receipts.Total()
	totalInTill := totalCash.Add(totalReceipts)
	expectedTotal := startingFloat.Add(cashUp.ExpectedTakings)
	difference := totalInTill.Sub(expectedTotal)
	exact := difference.Abs().LessThan(domain.MinorUnit)

	return domain.Analysis{
		TotalCash:       totalCash,
		TotalReceipts:   totalReceipts,
		TotalCashIn:     cashUp.CashIn.Total(),
		TotalInTill:     totalInTill,
		StartingFloat:   startingFloat,
		ExpectedTakings: cashUp.ExpectedTakings,
		ExpectedTotal:   expectedTotal,
		Difference:      difference,
		AmountToRemove:  totalInTill.Sub(startingFloat),
		IsOver:          difference.IsPositive() && !exact,
		IsShort:         difference.IsNegative() && !exact,
		IsExact:         exact,
	}, nil
}

// SuggestRemoval picks notes and coins to take out, largest denomination first, until
// excess is covered or nothing more fits. It is greedy, not an optimal change-maker:
// whatever it cannot cover is returned as the remainder.
func SuggestRemoval(excess decimal.Decimal, counts domain.CashCount, table domain.DenominationTable) ([]domain.RemovalSuggestion, decimal.Decimal) {
	suggestions := make([]domain.RemovalSuggestion, 0)
	remaining := excess

	for i := len(table) - 1; i >= 0; i-- {
		if i >= len(counts) {
			continue
		}
		d := table[i]
		available := counts[i]
		if available <= 0 || !d.Value.IsPositive() || d.Value.GreaterThan(remaining) {
			continue
		}

		fit, _ := remaining.QuoRem(d.Value, 0)
		removeCount := min(available, fit.IntPart())
		if removeCount <= 0 {
			continue
		}

		removed := d.Value.Mul(decimal.NewFromInt(removeCount))
		suggestions = append(suggestions, domain.RemovalSuggestion{
			Denomination: d.Label,
			Count:        removeCount,
			Value:        removed,
		})
		remaining = remaining.Sub(removed)
	}

	return suggestions, remaining
}

// PlanBagging turns an analysis into bagging instructions. Receipts always leave the
// till first; cash-in entries never do.
func PlanBagging(analysis domain.Analysis, counts domain.CashCount, table domain.DenominationTable) domain.BaggingPlan {
	plan := domain.BaggingPlan{
		TotalToRemove:        analysis.AmountToRemove,
		AmountToAdd:          decimal.Zero,
		ReceiptsToRemove:     analysis.TotalReceipts,
		CashInRetained:       analysis.TotalCashIn,
		CashToRemove:         decimal.Zero,
		Suggestions:          make([]domain.RemovalSuggestion, 0),
		Remainder:            decimal.Zero,
		AdditionalCashNeeded: decimal.Zero,
		FinalTillAmount:      analysis.StartingFloat,
	}

	if !analysis.AmountToRemove.IsPositive() {
		plan.AmountToAdd = analysis.AmountToRemove.Abs()
		return plan
	}

	cashToRemove := analysis.AmountToRemove.Sub(analysis.TotalReceipts)
	plan.CashToRemove = cashToRemove

	switch {
	case cashToRemove.IsPositive():
		plan.Suggestions, plan.Remainder = SuggestRemoval(cashToRemove, counts, table)
	case cashToRemove.IsNegative():
		// Receipts alone exceed what is owed; the difference has to come from elsewhere.
		plan.NeedsAdditionalCash = true
		plan.AdditionalCashNeeded = cashToRemove.Abs()
	}

	return plan
}
