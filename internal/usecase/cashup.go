package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"till-reconciliation/internal/domain"
	"till-reconciliation/internal/engine"
	"till-reconciliation/internal/report"
)

const instrumentationName = "till-reconciliation/usecase"

// Settings is the fixed per-deployment configuration of the till.
type Settings struct {
	Denominations  domain.DenominationTable
	StartingFloat  decimal.Decimal
	CurrencySymbol string
}

// SheetOverrides replace values read from a sheet. Nil fields keep the sheet's value.
type SheetOverrides struct {
	Date            *time.Time
	ExpectedTakings *decimal.Decimal
}

// CashUpUseCase orchestrates the cash-up process: reconcile, render and persist.
type CashUpUseCase struct {
	sheets   SheetRepository
	reports  ReportRepository
	settings Settings
	renderer report.Renderer
	logger   *slog.Logger
	tracer   trace.Tracer

	calculations   metric.Int64Counter
	duration       metric.Float64Histogram
	reportFailures metric.Int64Counter
}

// NewCashUpUseCase creates a new instance of the usecase.
func NewCashUpUseCase(sheets SheetRepository, reports ReportRepository, opts ...Option) (*CashUpUseCase, error) {
	s := settings{
		table:         domain.DefaultDenominations(),
		startingFloat: domain.DefaultStartingFloat(),
		symbol:        "£",
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(instrumentationName)
	}
	if s.meter == nil {
		s.meter = otel.Meter(instrumentationName)
	}

	if err := s.table.Validate(); err != nil {
		return nil, fmt.Errorf("invalid denomination table: %w", err)
	}
	if s.startingFloat.IsNegative() {
		return nil, fmt.Errorf("%w: starting float must not be negative", domain.ErrInvalidInput)
	}
	if err := domain.CheckAmountRange("starting float", s.startingFloat); err != nil {
		return nil, err
	}

	uc := &CashUpUseCase{
		sheets:  sheets,
		reports: reports,
		settings: Settings{
			Denominations:  s.table,
			StartingFloat:  s.startingFloat,
			CurrencySymbol: s.symbol,
		},
		renderer: report.NewRenderer(s.table, s.symbol),
		logger:   s.logger,
		tracer:   s.tracer,
	}

	var err error
	uc.calculations, err = s.meter.Int64Counter("cashup.calculations",
		metric.WithDescription("Cash-up calculations by result"))
	if err != nil {
		return nil, fmt.Errorf("could not create calculations counter: %w", err)
	}
	uc.duration, err = s.meter.Float64Histogram("cashup.calculation.duration",
		metric.WithDescription("Time spent reconciling a cash up"), metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}
	uc.reportFailures, err = s.meter.Int64Counter("cashup.report.failures",
		metric.WithDescription("Reports that could not be saved"))
	if err != nil {
		return nil, fmt.Errorf("could not create report failures counter: %w", err)
	}

	return uc, nil
}

// Settings returns the till configuration the usecase reconciles against.
func (uc *CashUpUseCase) Settings() Settings {
	return uc.settings
}

// Calculate reconciles cashUp and plans the bagging. Every call starts from scratch,
// so an edited count or receipt list is simply calculated again.
func (uc *CashUpUseCase) Calculate(ctx context.Context, cashUp domain.CashUp) (*domain.CashUpResult, error) {
	ctx, span := uc.tracer.Start(ctx, "cashup.calculate")
	defer span.End()
	start := time.Now()

	table := uc.settings.Denominations
	analysis, err := engine.Analyze(cashUp, uc.settings.StartingFloat, table)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		uc.calculations.Add(ctx, 1, metric.WithAttributes(attribute.String("result", "invalid")))
		return nil, fmt.Errorf("could not analyze cash up: %w", err)
	}

	result := &domain.CashUpResult{
		ID:       uuid.New(),
		CashUp:   cashUp,
		Analysis: analysis,
		Plan:     engine.PlanBagging(analysis, cashUp.Counts, table),
	}

	outcome := string(analysis.Result())
	uc.duration.Record(ctx, time.Since(start).Seconds())
	uc.calculations.Add(ctx, 1, metric.WithAttributes(attribute.String("result", outcome)))
	span.SetAttributes(
		attribute.String("cashup.id", result.ID.String()),
		attribute.String("cashup.result", outcome),
		attribute.String("cashup.difference", analysis.Difference.StringFixed(2)),
		attribute.String("cashup.action", string(result.Plan.Action())),
	)
	uc.logger.InfoContext(ctx, "cash up calculated",
		"id", result.ID,
		"result", outcome,
		"difference", analysis.Difference.StringFixed(2),
		"amount_to_remove", analysis.AmountToRemove.StringFixed(2),
	)

	return result, nil
}

// CalculateFromSheet loads a sheet from path, applies overrides and calculates it.
func (uc *CashUpUseCase) CalculateFromSheet(ctx context.Context, path string, overrides SheetOverrides) (*domain.CashUpResult, error) {
	cashUp, err := uc.sheets.GetCashUpSheet(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("could not get cash-up sheet: %w", err)
	}
	if overrides.Date != nil {
		cashUp.Date = *overrides.Date
	}
	if overrides.ExpectedTakings != nil {
		cashUp.ExpectedTakings = *overrides.ExpectedTakings
	}
	return uc.Calculate(ctx, *cashUp)
}

// SaveReport calculates cashUp, renders the report and persists it.
// If only persistence fails, the result is still returned alongside an error
// wrapping domain.ErrPersistence.
func (uc *CashUpUseCase) SaveReport(ctx context.Context, cashUp domain.CashUp) (*domain.CashUpResult, string, error) {
	ctx, span := uc.tracer.Start(ctx, "cashup.save_report")
	defer span.End()

	if cashUp.Date.IsZero() {
		err := fmt.Errorf("%w: a report needs a date", domain.ErrInvalidInput)
		span.SetStatus(codes.Error, err.Error())
		return nil, "", err
	}

	result, err := uc.Calculate(ctx, cashUp)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, "", err
	}

	path, err := uc.reports.SaveReport(ctx, cashUp.Date, uc.Render(*result))
	if err != nil {
		if !errors.Is(err, domain.ErrPersistence) {
			err = fmt.Errorf("%w: %w", domain.ErrPersistence, err)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		uc.reportFailures.Add(ctx, 1)
		uc.logger.ErrorContext(ctx, "failed to save cash-up report", "id", result.ID, "error", err)
		return result, "", fmt.Errorf("could not save report: %w", err)
	}

	span.SetAttributes(attribute.String("cashup.report_path", path))
	uc.logger.InfoContext(ctx, "cash-up report saved", "id", result.ID, "path", path)
	return result, path, nil
}

// Render returns the text report for result.
func (uc *CashUpUseCase) Render(result domain.CashUpResult) string {
	return uc.renderer.Render(result)
}

// RenderSuggestions returns the on-screen removal suggestions for result.
func (uc *CashUpUseCase) RenderSuggestions(result domain.CashUpResult) string {
	return uc.renderer.RenderSuggestions(result.Plan)
}
