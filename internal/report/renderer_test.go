package report_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"till-reconciliation/internal/domain"
	"till-reconciliation/internal/engine"
	"till-reconciliation/internal/report"
)

var table = domain.DefaultDenominations()

func calculate(t *testing.T, cashUp domain.CashUp) domain.CashUpResult {
	t.Helper()
	analysis, err := engine.Analyze(cashUp, domain.DefaultStartingFloat(), table)
	require.NoError(t, err)
	return domain.CashUpResult{
		ID:       uuid.New(),
		CashUp:   cashUp,
		Analysis: analysis,
		Plan:     engine.PlanBagging(analysis, cashUp.Counts, table),
	}
}

func counts(pairs map[string]int64) domain.CashCount {
	c := domain.NewCashCount(table)
	for label, n := range pairs {
		c = c.With(table.Index(label), n)
	}
	return c
}

func TestRenderer_Render_FullReport(t *testing.T) {
	result := calculate(t, domain.CashUp{
		Date:            time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC),
		Counts:          counts(map[string]int64{"£50": 6, "£1": 3, "20p": 2}),
		Receipts:        domain.Receipts{decimal.RequireFromString("12.50"), decimal.RequireFromString("7.50")},
		CashIn:          domain.CashInEntries{{Title: "Air hockey", Amount: decimal.RequireFromString("15")}},
		ExpectedTakings: decimal.RequireFromString("100"),
	})

	want := `============================================================
CASH UP - 19/10/2026
============================================================

CASH BREAKDOWN:
  20p: 2 × £0.20 = £0.40
  £1: 3 × £1.00 = £3.00
  £50: 6 × £50.00 = £300.00
  Total Cash: £303.40

RECEIPT BREAKDOWN:
  Receipt #1: £12.50
  Receipt #2: £7.50
  Total Receipts: £20.00

ADDITIONAL CASH IN:
  Air hockey: £15.00
  Total Additional Cash: £15.00

SUMMARY:
  Starting Float: £200.00
  Expected Takings: £100.00
  Expected Total: £300.00
  Actual Total: £323.40
    (Cash: £303.40 + Receipts: £20.00)
  Additional Cash In: £15.00 (already in till)
  Result: OVER by £23.40

BAGGING INSTRUCTIONS:
  Remove £123.40 total:
    - All receipts: £20.00
    - Additional cash stays in till: £15.00
    - Additional cash: £103.40
  Final till amount: £200.00

============================================================
CASH UP COMPLETE
============================================================`

	got := report.NewRenderer(table, "£").Render(result)

	assert.Equal(t, want, got)
}

func TestRenderer_Render_Variants(t *testing.T) {
	tests := []struct {
		name        string
		cashUp      domain.CashUp
		contains    []string
		notContains []string
	}{
		{
			name: "short till needs topping up",
			cashUp: domain.CashUp{
				Date:            time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC),
				Counts:          counts(map[string]int64{"£50": 2, "£20": 1, "£10": 1}),
				Receipts:        domain.Receipts{decimal.RequireFromString("20")},
				ExpectedTakings: decimal.RequireFromString("100"),
			},
			contains: []string{
				"CASH UP - 05/01/2025",
				"\nADDITIONAL CASH IN: None\n",
				"  Result: SHORT by £150.00\n",
				"\nBAGGING INSTRUCTIONS:\n  Add £50.00 to reach £200.00 float\n  Final till amount: £200.00\n",
			},
			notContains: []string{"Remove £"},
		},
		{
			name: "exact with nothing but notes",
			cashUp: domain.CashUp{
				Date:            time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC),
				Counts:          counts(map[string]int64{"£50": 6}),
				ExpectedTakings: decimal.RequireFromString("100"),
			},
			contains: []string{
				"\nRECEIPTS: None\n",
				"  Result: EXACT BALANCE\n",
				"  Remove £100.00 total:\n    - All receipts: £0.00\n",
				"    - Additional cash: £100.00\n",
			},
		},
		{
			name: "receipts exceed what is owed",
			cashUp: domain.CashUp{
				Date:            time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC),
				Counts:          counts(map[string]int64{"£50": 3, "£20": 1}),
				Receipts:        domain.Receipts{decimal.RequireFromString("50"), decimal.RequireFromString("30")},
				ExpectedTakings: decimal.RequireFromString("40"),
			},
			contains: []string{
				"  Remove £50.00 total:\n",
				"    - Add cash: £30.00\n",
			},
			notContains: []string{"    - Additional cash: "},
		},
	}

	renderer := report.NewRenderer(table, "£")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderer.Render(calculate(t, tt.cashUp))
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, got, s)
			}
		})
	}
}

func TestRenderer_RenderSuggestions(t *testing.T) {
	renderer := report.NewRenderer(table, "£")

	t.Run("with remainder", func(t *testing.T) {
		plan := domain.BaggingPlan{
			CashToRemove: decimal.RequireFromString("57.30"),
			Suggestions: []domain.RemovalSuggestion{
				{Denomination: "£50", Count: 1, Value: decimal.RequireFromString("50")},
				{Denomination: "£5", Count: 1, Value: decimal.RequireFromString("5")},
			},
			Remainder: decimal.RequireFromString("2.30"),
		}

		want := "--- SUGGESTED CASH REMOVAL ---\n" +
			"Remove 1 × £50 = £50.00\n" +
			"Remove 1 × £5 = £5.00\n" +
			"Remaining to remove: £2.30\n" +
			"(You may need to make change with smaller denominations)"
		assert.Equal(t, want, renderer.RenderSuggestions(plan))
	})

	t.Run("nothing available", func(t *testing.T) {
		plan := domain.BaggingPlan{
			CashToRemove: decimal.RequireFromString("3"),
			Remainder:    decimal.RequireFromString("3"),
		}
		assert.Contains(t, renderer.RenderSuggestions(plan), "Not enough large denominations")
	})

	t.Run("no cash to remove", func(t *testing.T) {
		assert.Empty(t, renderer.RenderSuggestions(domain.BaggingPlan{}))
	})
}
