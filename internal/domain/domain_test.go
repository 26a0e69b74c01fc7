package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"till-reconciliation/internal/domain"
)

func TestDefaultDenominations(t *testing.T) {
	table := domain.DefaultDenominations()

	require.NoError(t, table.Validate())
	assert.Len(t, table, 12)
	assert.Equal(t, "1p", table[0].Label)
	assert.Equal(t, "£50", table[len(table)-1].Label)
	assert.Equal(t, 9, table.Index("£10"))
	assert.Equal(t, -1, table.Index("£100"))
	assert.True(t, domain.DefaultStartingFloat().Equal(decimal.NewFromInt(200)))
}

func TestDenominationTable_Validate(t *testing.T) {
	tests := []struct {
		name  string
		table domain.DenominationTable
	}{
		{name: "empty", table: domain.DenominationTable{}},
		{
			name: "duplicate label",
			table: domain.DenominationTable{
				{Label: "1p", Value: decimal.RequireFromString("0.01")},
				{Label: "1p", Value: decimal.RequireFromString("0.02")},
			},
		},
		{
			name: "not ascending",
			table: domain.DenominationTable{
				{Label: "2p", Value: decimal.RequireFromString("0.02")},
				{Label: "1p", Value: decimal.RequireFromString("0.01")},
			},
		},
		{
			name:  "zero value",
			table: domain.DenominationTable{{Label: "0p", Value: decimal.Zero}},
		},
		{
			name:  "missing label",
			table: domain.DenominationTable{{Value: decimal.RequireFromString("0.01")}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.table.Validate(), domain.ErrInvalidInput)
		})
	}
}

func TestCashCount(t *testing.T) {
	table := domain.DefaultDenominations()

	t.Run("with leaves the original untouched", func(t *testing.T) {
		counts := domain.NewCashCount(table)
		updated := counts.With(11, 6)

		assert.Equal(t, int64(0), counts[11])
		assert.Equal(t, int64(6), updated[11])
	})

	t.Run("length mismatch", func(t *testing.T) {
		err := domain.CashCount{1, 2, 3}.Validate(table)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("negative count", func(t *testing.T) {
		err := domain.NewCashCount(table).With(3, -1).Validate(table)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Contains(t, err.Error(), "10p")
	})
}

func TestCashUp_Validate(t *testing.T) {
	table := domain.DefaultDenominations()
	valid := domain.CashUp{
		Counts:          domain.NewCashCount(table),
		Receipts:        domain.Receipts{decimal.RequireFromString("12.50")},
		CashIn:          domain.CashInEntries{{Title: "Air hockey", Amount: decimal.RequireFromString("4.00")}},
		ExpectedTakings: decimal.RequireFromString("100"),
	}
	require.NoError(t, valid.Validate(table))

	negativeReceipt := valid
	negativeReceipt.Receipts = domain.Receipts{decimal.RequireFromString("-1")}
	assert.ErrorIs(t, negativeReceipt.Validate(table), domain.ErrInvalidInput)

	blankTitle := valid
	blankTitle.CashIn = domain.CashInEntries{{Title: "  ", Amount: decimal.RequireFromString("1")}}
	assert.ErrorIs(t, blankTitle.Validate(table), domain.ErrInvalidInput)

	negativeExpected := valid
	negativeExpected.ExpectedTakings = decimal.RequireFromString("-0.01")
	assert.ErrorIs(t, negativeExpected.Validate(table), domain.ErrInvalidInput)

	tinyReceipt := valid
	tinyReceipt.Receipts = domain.Receipts{decimal.RequireFromString("1e-3000000")}
	assert.ErrorIs(t, tinyReceipt.Validate(table), domain.ErrInvalidInput)

	hugeCashIn := valid
	hugeCashIn.CashIn = domain.CashInEntries{{Title: "Air hockey", Amount: decimal.RequireFromString("1e50")}}
	assert.ErrorIs(t, hugeCashIn.Validate(table), domain.ErrInvalidInput)

	hugeExpected := valid
	hugeExpected.ExpectedTakings = decimal.RequireFromString("2000000000")
	assert.ErrorIs(t, hugeExpected.Validate(table), domain.ErrInvalidInput)

	assert.True(t, valid.Receipts.Total().Equal(decimal.RequireFromString("12.50")))
	assert.True(t, valid.CashIn.Total().Equal(decimal.RequireFromString("4")))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "12.50", want: "12.5"},
		{input: " £7.05 ", want: "7.05"},
		{input: "0", want: "0"},
		{input: "-1.00", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
		{input: "0.005", want: "0.005"},
		{input: "12.500000", want: "12.5"},
		{input: "1e-3000000", wantErr: true},
		{input: "0.00001", wantErr: true},
		{input: "1e12", wantErr: true},
		{input: "1000000000.01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := domain.ParseAmount(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestCheckAmountRange(t *testing.T) {
	for input, wantErr := range map[string]bool{
		"0":              false,
		"0.005":          false,
		"199.9999":       false,
		"1000000000":     false,
		"-1000000000":    false,
		"0.12345":        true,
		"1e-19":          true,
		"0e-3000000":     true,
		"1e-50000000":    true,
		"1e10":           true,
		"1000000000.001": true,
	} {
		t.Run(input, func(t *testing.T) {
			err := domain.CheckAmountRange("amount", decimal.RequireFromString(input))
			if wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "£130.00", domain.FormatAmount("£", decimal.NewFromInt(130)))
	assert.Equal(t, "£0.10", domain.FormatAmount("£", decimal.RequireFromString("0.1")))
	assert.Equal(t, "£0.01", domain.FormatAmount("£", decimal.RequireFromString("0.005")))
}

func TestParseDate(t *testing.T) {
	want := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)

	got, err := domain.ParseDate("07/03/2025")
	require.NoError(t, err)
	assert.True(t, want.Equal(got))

	got, err = domain.ParseDate("2025-03-07")
	require.NoError(t, err)
	assert.True(t, want.Equal(got))

	for _, bad := range []string{"7/3/2025", "31/02/2025", "01/01/1999", "tomorrow"} {
		_, err := domain.ParseDate(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, bad)
	}
}

func TestAnalysisAndPlanSummaries(t *testing.T) {
	assert.Equal(t, domain.ResultExact, domain.Analysis{IsExact: true}.Result())
	assert.Equal(t, domain.ResultOver, domain.Analysis{IsOver: true}.Result())
	assert.Equal(t, domain.ResultShort, domain.Analysis{IsShort: true}.Result())

	assert.Equal(t, domain.ActionRemove, domain.BaggingPlan{TotalToRemove: decimal.NewFromInt(5)}.Action())
	assert.Equal(t, domain.ActionAdd, domain.BaggingPlan{TotalToRemove: decimal.NewFromInt(-5), AmountToAdd: decimal.NewFromInt(5)}.Action())
	assert.Equal(t, domain.ActionNone, domain.BaggingPlan{}.Action())
}
