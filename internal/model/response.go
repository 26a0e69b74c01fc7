package model

import (
	"github.com/shopspring/decimal"

	"till-reconciliation/internal/domain"
)

// Amounts are sent as fixed two-decimal strings, e.g. "130.00".
func fixed(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// AnalysisResponse is the JSON form of a float analysis.
type AnalysisResponse struct {
	TotalCash           string `json:"total_cash"`
	TotalReceipts       string `json:"total_receipts"`
	TotalAdditionalCash string `json:"total_additional_cash"`
	TotalInTill         string `json:"total_in_till"`
	StartingFloat       string `json:"starting_float"`
	ExpectedTakings     string `json:"expected_takings"`
	ExpectedTotal       string `json:"expected_total"`
	Difference          string `json:"difference"`
	AmountToRemove      string `json:"amount_to_remove"`
	Result              string `json:"result"`
	IsOver              bool   `json:"is_over"`
	IsShort             bool   `json:"is_short"`
	IsExact             bool   `json:"is_exact"`
}

// SuggestionResponse is one denomination to bag up.
type SuggestionResponse struct {
	Denomination string `json:"denomination"`
	Count        int64  `json:"count"`
	Value        string `json:"value"`
}

// BaggingResponse is the JSON form of a bagging plan.
type BaggingResponse struct {
	Action                    string               `json:"action"`
	TotalToRemove             string               `json:"total_to_remove"`
	AmountToAdd               string               `json:"amount_to_add"`
	ReceiptsToRemove          string               `json:"receipts_to_remove"`
	TotalAdditionalCash       string               `json:"total_additional_cash"`
	CashToRemove              string               `json:"cash_to_remove"`
	CashSuggestions           []SuggestionResponse `json:"cash_suggestions"`
	RemainingAfterSuggestions string               `json:"remaining_after_suggestions"`
	NeedsAdditionalCash       bool                 `json:"needs_additional_cash"`
	AdditionalCashNeeded      string               `json:"additional_cash_needed"`
	FinalTillAmount           string               `json:"final_till_amount"`
}

// CalculationResponse is returned by the calculate and report endpoints and by
// the CLI's JSON output.
type CalculationResponse struct {
	Success  bool             `json:"success"`
	ID       string           `json:"id"`
	Date     string           `json:"date,omitempty"`
	Analysis AnalysisResponse `json:"analysis"`
	Bagging  BaggingResponse  `json:"bagging"`
	Path     string           `json:"path,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// NewCalculationResponse flattens a result into its JSON shape.
func NewCalculationResponse(result domain.CashUpResult) CalculationResponse {
	a := result.Analysis
	p := result.Plan

	suggestions := make([]SuggestionResponse, 0, len(p.Suggestions))
	for _, s := range p.Suggestions {
		suggestions = append(suggestions, SuggestionResponse{
			Denomination: s.Denomination,
			Count:        s.Count,
			Value:        fixed(s.Value),
		})
	}

	return CalculationResponse{
		Success: true,
		ID:      result.ID.String(),
		Date:    FormatDate(result.CashUp.Date),
		Analysis: AnalysisResponse{
			TotalCash:           fixed(a.TotalCash),
			TotalReceipts:       fixed(a.TotalReceipts),
			TotalAdditionalCash: fixed(a.TotalCashIn),
			TotalInTill:         fixed(a.TotalInTill),
			StartingFloat:       fixed(a.StartingFloat),
			ExpectedTakings:     fixed(a.ExpectedTakings),
			ExpectedTotal:       fixed(a.ExpectedTotal),
			Difference:          fixed(a.Difference),
			AmountToRemove:      fixed(a.AmountToRemove),
			Result:              string(a.Result()),
			IsOver:              a.IsOver,
			IsShort:             a.IsShort,
			IsExact:             a.IsExact,
		},
		Bagging: BaggingResponse{
			Action:                    string(p.Action()),
			TotalToRemove:             fixed(p.TotalToRemove),
			AmountToAdd:               fixed(p.AmountToAdd),
			ReceiptsToRemove:          fixed(p.ReceiptsToRemove),
			TotalAdditionalCash:       fixed(p.CashInRetained),
			CashToRemove:              fixed(p.CashToRemove),
			CashSuggestions:           suggestions,
			RemainingAfterSuggestions: fixed(p.Remainder),
			NeedsAdditionalCash:       p.NeedsAdditionalCash,
			AdditionalCashNeeded:      fixed(p.AdditionalCashNeeded),
			FinalTillAmount:           fixed(p.FinalTillAmount),
		},
	}
}

// DenominationResponse is one row of the denomination table.
type DenominationResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SettingsResponse describes the till configuration.
type SettingsResponse struct {
	Denominations  []DenominationResponse `json:"denominations"`
	StartingFloat  string                 `json:"starting_float"`
	CurrencySymbol string                 `json:"currency_symbol"`
}

// NewSettingsResponse lists table with the float and symbol.
func NewSettingsResponse(table domain.DenominationTable, startingFloat decimal.Decimal, symbol string) SettingsResponse {
	denominations := make([]DenominationResponse, 0, len(table))
	for _, d := range table {
		denominations = append(denominations, DenominationResponse{Label: d.Label, Value: fixed(d.Value)})
	}
	return SettingsResponse{
		Denominations:  denominations,
		StartingFloat:  fixed(startingFloat),
		CurrencySymbol: symbol,
	}
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Status  int    `json:"status"`
	Error   string `json:"error"`
}
