package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"till-reconciliation/internal/config"
	"till-reconciliation/internal/domain"
	"till-reconciliation/internal/gateway"
	"till-reconciliation/internal/handler"
	"till-reconciliation/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Error reading configuration: %v", err)
	}

	logger := config.NewLogger(os.Stderr, cfg)
	slog.SetDefault(logger)

	table := domain.DefaultDenominations()
	sheetRepo := gateway.NewCSVSheetRepository(table)
	reportRepo := gateway.NewFileReportRepository(cfg.ReportsDir, gateway.WithOverwrite(cfg.OverwriteReports))

	cashUpUseCase, err := usecase.NewCashUpUseCase(sheetRepo, reportRepo,
		usecase.WithDenominations(table),
		usecase.WithStartingFloat(cfg.StartingFloat),
		usecase.WithCurrencySymbol(cfg.CurrencySymbol),
		usecase.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("Error setting up cash up: %v", err)
	}

	server := &fasthttp.Server{
		Handler:      fasthttpadaptor.NewFastHTTPHandler(handler.NewRouter(cashUpUseCase, logger)),
		Name:         "cashupd",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("cash-up server starting", "addr", cfg.Addr, "reports_dir", cfg.ReportsDir)
		errCh <- server.ListenAndServe(cfg.Addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	case <-ctx.Done():
		logger.Info("cash-up server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}
}
