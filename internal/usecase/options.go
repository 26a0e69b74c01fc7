package usecase

import (
	"log/slog"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"till-reconciliation/internal/domain"
)

// Option configures a CashUpUseCase.
type Option func(*settings)

type settings struct {
	table         domain.DenominationTable
	startingFloat decimal.Decimal
	symbol        string
	logger        *slog.Logger
	tracer        trace.Tracer
	meter         metric.Meter
}

// WithDenominations replaces the default sterling denomination table.
func WithDenominations(table domain.DenominationTable) Option {
	return func(s *settings) {
		s.table = table
	}
}

// WithStartingFloat sets the float the till is restored to after bagging.
func WithStartingFloat(amount decimal.Decimal) Option {
	return func(s *settings) {
		s.startingFloat = amount
	}
}

// WithCurrencySymbol sets the symbol used in rendered reports.
func WithCurrencySymbol(symbol string) Option {
	return func(s *settings) {
		s.symbol = symbol
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithTracer sets the OpenTelemetry tracer. The global tracer is used otherwise.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *settings) {
		s.tracer = tracer
	}
}

// WithMeter sets the OpenTelemetry meter. The global meter is used otherwise.
func WithMeter(meter metric.Meter) Option {
	return func(s *settings) {
		s.meter = meter
	}
}
