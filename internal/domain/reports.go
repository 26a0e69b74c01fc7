package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Result classifies how the till compares with the expected total.
type Result string

const (
	ResultOver  Result = "OVER"
	ResultShort Result = "SHORT"
	ResultExact Result = "EXACT"
)

// Analysis is the float reconciliation for one cash up.
// Exactly one of IsOver, IsShort and IsExact is true.
type Analysis struct {
	TotalCash       decimal.Decimal `json:"total_cash"`
	TotalReceipts   decimal.Decimal `json:"total_receipts"`
	TotalCashIn     decimal.Decimal `json:"total_additional_cash"`
	TotalInTill     decimal.Decimal `json:"total_in_till"`
	StartingFloat   decimal.Decimal `json:"starting_float"`
	ExpectedTakings decimal.Decimal `json:"expected_takings"`
	ExpectedTotal   decimal.Decimal `json:"expected_total"`
	Difference      decimal.Decimal `json:"difference"`
	AmountToRemove  decimal.Decimal `json:"amount_to_remove"`
	IsOver          bool            `json:"is_over"`
	IsShort         bool            `json:"is_short"`
	IsExact         bool            `json:"is_exact"`
}

// Result returns the flag that is set as a single value.
func (a Analysis) Result() Result {
	switch {
	case a.IsExact:
		return ResultExact
	case a.IsOver:
		return ResultOver
	default:
		return ResultShort
	}
}

// RemovalSuggestion says how many of one denomination to take out of the till.
type RemovalSuggestion struct {
	Denomination string          `json:"denomination"`
	Count        int64           `json:"count"`
	Value        decimal.Decimal `json:"value"`
}

// BaggingAction is what the operator has to do to get back to the float.
type BaggingAction string

const (
	ActionRemove BaggingAction = "REMOVE"
	ActionAdd    BaggingAction = "ADD"
	ActionNone   BaggingAction = "NONE"
)

// BaggingPlan tells the operator what to bag up (or top up) to restore the float.
type BaggingPlan struct {
	// TotalToRemove mirrors Analysis.AmountToRemove and may be zero or negative.
	TotalToRemove        decimal.Decimal     `json:"total_to_remove"`
	AmountToAdd          decimal.Decimal     `json:"amount_to_add"`
	ReceiptsToRemove     decimal.Decimal     `json:"receipts_to_remove"`
	CashInRetained       decimal.Decimal     `json:"total_additional_cash"`
	CashToRemove         decimal.Decimal     `json:"cash_to_remove"`
	Suggestions          []RemovalSuggestion `json:"cash_suggestions"`
	Remainder            decimal.Decimal     `json:"remaining_after_suggestions"`
	NeedsAdditionalCash  bool                `json:"needs_additional_cash"`
	AdditionalCashNeeded decimal.Decimal     `json:"additional_cash_needed"`
	FinalTillAmount      decimal.Decimal     `json:"final_till_amount"`
}

// Action summarises the plan.
func (p BaggingPlan) Action() BaggingAction {
	switch {
	case p.TotalToRemove.IsPositive():
		return ActionRemove
	case p.AmountToAdd.IsPositive():
		return ActionAdd
	default:
		return ActionNone
	}
}

// CashUpResult ties a request to its analysis and bagging plan.
type CashUpResult struct {
	ID       uuid.UUID   `json:"id"`
	CashUp   CashUp      `json:"cash_up"`
	Analysis Analysis    `json:"analysis"`
	Plan     BaggingPlan `json:"bagging"`
}
