// Package report renders the plain-text cash-up audit record.
package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"till-reconciliation/internal/domain"
)

var rule = strings.Repeat("=", 60)

// Renderer formats results into the report layout kept in the Reports directory.
// The layout must stay byte-compatible with reports written by earlier versions.
type Renderer struct {
	Table  domain.DenominationTable
	Symbol string
}

// NewRenderer returns a renderer pricing counts against table.
func NewRenderer(table domain.DenominationTable, symbol string) Renderer {
	return Renderer{Table: table, Symbol: symbol}
}

func (r Renderer) money(amount decimal.Decimal) string {
	return domain.FormatAmount(r.Symbol, amount)
}

// Render produces the full report for result. Lines are joined with "\n" and the
// text has no trailing newline.
func (r Renderer) Render(result domain.CashUpResult) string {
	cashUp := result.CashUp
	analysis := result.Analysis
	plan := result.Plan

	lines := []string{
		rule,
		"CASH UP - " + cashUp.Date.Format(domain.ReportDateLayout),
		rule,
		"\nCASH BREAKDOWN:",
	}

	for i, d := range r.Table {
		if i >= len(cashUp.Counts) || cashUp.Counts[i] <= 0 {
			continue
		}
		count := cashUp.Counts[i]
		lines = append(lines, fmt.Sprintf("  %s: %d × %s = %s",
			d.Label, count, r.money(d.Value), r.money(d.Value.Mul(decimal.NewFromInt(count)))))
	}
	lines = append(lines, "  Total Cash: "+r.money(analysis.TotalCash))

	if len(cashUp.Receipts) > 0 {
		lines = append(lines, "\nRECEIPT BREAKDOWN:")
		for i, amount := range cashUp.Receipts {
			lines = append(lines, fmt.Sprintf("  Receipt #%d: %s", i+1, r.money(amount)))
		}
		lines = append(lines, "  Total Receipts: "+r.money(analysis.TotalReceipts))
	} else {
		lines = append(lines, "\nRECEIPTS: None")
	}

	if len(cashUp.CashIn) > 0 {
		lines = append(lines, "\nADDITIONAL CASH IN:")
		for _, entry := range cashUp.CashIn {
			lines = append(lines, fmt.Sprintf("  %s: %s", entry.Title, r.money(entry.Amount)))
		}
		lines = append(lines, "  Total Additional Cash: "+r.money(analysis.TotalCashIn))
	} else {
		lines = append(lines, "\nADDITIONAL CASH IN: None")
	}

	lines = append(lines,
		"\nSUMMARY:",
		"  Starting Float: "+r.money(analysis.StartingFloat),
		"  Expected Takings: "+r.money(analysis.ExpectedTakings),
		"  Expected Total: "+r.money(analysis.ExpectedTotal),
		"  Actual Total: "+r.money(analysis.TotalInTill),
		fmt.Sprintf("    (Cash: %s + Receipts: %s)", r.money(analysis.TotalCash), r.money(analysis.TotalReceipts)),
		fmt.Sprintf("  Additional Cash In: %s (already in till)", r.money(analysis.TotalCashIn)),
	)

	switch analysis.Result() {
	case domain.ResultExact:
		lines = append(lines, "  Result: EXACT BALANCE")
	case domain.ResultOver:
		lines = append(lines, "  Result: OVER by "+r.money(analysis.Difference))
	default:
		lines = append(lines, "  Result: SHORT by "+r.money(analysis.Difference.Abs()))
	}

	lines = append(lines, "\nBAGGING INSTRUCTIONS:")
	if analysis.AmountToRemove.IsPositive() {
		lines = append(lines,
			fmt.Sprintf("  Remove %s total:", r.money(analysis.AmountToRemove)),
			"    - All receipts: "+r.money(analysis.TotalReceipts),
			"    - Additional cash stays in till: "+r.money(analysis.TotalCashIn),
		)
		if plan.CashToRemove.IsPositive() {
			lines = append(lines, "    - Additional cash: "+r.money(plan.CashToRemove))
		} else if plan.NeedsAdditionalCash {
			lines = append(lines, "    - Add cash: "+r.money(plan.AdditionalCashNeeded))
		}
	} else {
		lines = append(lines, fmt.Sprintf("  Add %s to reach %s float",
			r.money(analysis.AmountToRemove.Abs()), r.money(analysis.StartingFloat)))
	}

	lines = append(lines,
		"  Final till amount: "+r.money(analysis.StartingFloat),
		"\n"+rule,
		"CASH UP COMPLETE",
		rule,
	)

	return strings.Join(lines, "\n")
}

// RenderSuggestions lists which notes and coins to bag up, for on-screen use.
// It is not part of the saved report.
func (r Renderer) RenderSuggestions(plan domain.BaggingPlan) string {
	if !plan.CashToRemove.IsPositive() {
		return ""
	}

	lines := []string{"--- SUGGESTED CASH REMOVAL ---"}
	if len(plan.Suggestions) == 0 {
		lines = append(lines, "Not enough large denominations available for optimal removal.")
	}
	for _, s := range plan.Suggestions {
		lines = append(lines, fmt.Sprintf("Remove %d × %s = %s", s.Count, s.Denomination, r.money(s.Value)))
	}
	if plan.Remainder.GreaterThanOrEqual(domain.MinorUnit) {
		lines = append(lines,
			"Remaining to remove: "+r.money(plan.Remainder),
			"(You may need to make change with smaller denominations)",
		)
	}
	return strings.Join(lines, "\n")
}
