// Package config loads till settings from the environment.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"till-reconciliation/internal/domain"
)

// Environment variables read by FromEnv.
const (
	EnvAddr             = "CASHUP_ADDR"
	EnvPort             = "PORT"
	EnvStartingFloat    = "CASHUP_STARTING_FLOAT"
	EnvReportsDir       = "CASHUP_REPORTS_DIR"
	EnvCurrencySymbol   = "CASHUP_CURRENCY_SYMBOL"
	EnvOverwriteReports = "CASHUP_OVERWRITE_REPORTS"
	EnvLogFormat        = "CASHUP_LOG_FORMAT"
	EnvLogLevel         = "CASHUP_LOG_LEVEL"
)

// Config holds the per-deployment settings.
type Config struct {
	Addr             string
	StartingFloat    decimal.Decimal
	ReportsDir       string
	CurrencySymbol   string
	OverwriteReports bool
	LogFormat        string
	LogLevel         slog.Level
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Addr:             ":8080",
		StartingFloat:    domain.DefaultStartingFloat(),
		ReportsDir:       "Reports",
		CurrencySymbol:   "£",
		OverwriteReports: true,
		LogFormat:        "text",
		LogLevel:         slog.LevelInfo,
	}
}

// FromEnv reads the process environment on top of Default.
func FromEnv() (Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup reads settings through lookup on top of Default.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if port, ok := lookup(EnvPort); ok && port != "" {
		cfg.Addr = ":" + port
	}
	if addr, ok := lookup(EnvAddr); ok && addr != "" {
		cfg.Addr = addr
	}
	if raw, ok := lookup(EnvStartingFloat); ok && raw != "" {
		amount, err := domain.ParseAmount(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvStartingFloat, err)
		}
		cfg.StartingFloat = amount
	}
	if dir, ok := lookup(EnvReportsDir); ok && dir != "" {
		cfg.ReportsDir = dir
	}
	if symbol, ok := lookup(EnvCurrencySymbol); ok && symbol != "" {
		cfg.CurrencySymbol = symbol
	}
	if raw, ok := lookup(EnvOverwriteReports); ok && raw != "" {
		overwrite, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s: could not parse '%s': %w", EnvOverwriteReports, raw, err)
		}
		cfg.OverwriteReports = overwrite
	}
	if format, ok := lookup(EnvLogFormat); ok && format != "" {
		format = strings.ToLower(format)
		if format != "text" && format != "json" {
			return Config{}, fmt.Errorf("%s: unknown log format '%s'", EnvLogFormat, format)
		}
		cfg.LogFormat = format
	}
	if raw, ok := lookup(EnvLogLevel); ok && raw != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}

	return cfg, nil
}

// NewLogger builds the process logger for the configured format and level.
func NewLogger(w io.Writer, cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
