package usecase

import (
	"context"
	"time"

	"till-reconciliation/internal/domain"
)

// SheetRepository loads a counted cash-up sheet.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go
type SheetRepository interface {
	GetCashUpSheet(ctx context.Context, path string) (*domain.CashUp, error)
}

// ReportRepository persists rendered cash-up reports and returns where they went.
type ReportRepository interface {
	SaveReport(ctx context.Context, date time.Time, content string) (string, error)
}
