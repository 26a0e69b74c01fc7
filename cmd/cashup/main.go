package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/goccy/go-json"

	"till-reconciliation/internal/config"
	"till-reconciliation/internal/domain"
	"till-reconciliation/internal/gateway"
	"till-reconciliation/internal/model"
	"till-reconciliation/internal/usecase"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Error reading configuration: %v", err)
	}

	sheetFile := flag.String("sheet", "", "Path to the cash-up sheet CSV file (required)")
	dateStr := flag.String("date", "", "Cash-up date (DD/MM/YYYY), overrides the sheet")
	expectedStr := flag.String("expected", "", "Expected takings from the till system, overrides the sheet")
	floatStr := flag.String("float", cfg.StartingFloat.StringFixed(2), "Starting float left in the till")
	reportsDir := flag.String("reports", cfg.ReportsDir, "Directory reports are saved under")
	save := flag.Bool("save", false, "Save the report file")
	overwrite := flag.Bool("overwrite", cfg.OverwriteReports, "Replace an existing report for the same date")
	format := flag.String("format", "text", "Output format: text or json")
	flag.Parse()

	if *sheetFile == "" {
		fmt.Println("Error: the -sheet flag is required.")
		flag.Usage()
		os.Exit(1)
	}
	if *format != "text" && *format != "json" {
		fmt.Printf("Error: unknown format '%s', use text or json.\n", *format)
		flag.Usage()
		os.Exit(1)
	}

	startingFloat, err := domain.ParseAmount(*floatStr)
	if err != nil {
		log.Fatalf("Error parsing starting float: %v", err)
	}

	var overrides usecase.SheetOverrides
	if *dateStr != "" {
		date, err := domain.ParseDate(*dateStr)
		if err != nil {
			log.Fatalf("Error parsing date: %v", err)
		}
		overrides.Date = &date
	}
	if *expectedStr != "" {
		expected, err := domain.ParseAmount(*expectedStr)
		if err != nil {
			log.Fatalf("Error parsing expected takings: %v", err)
		}
		overrides.ExpectedTakings = &expected
	}

	// Logs go to stderr so stdout stays a clean report.
	logger := config.NewLogger(os.Stderr, cfg)

	table := domain.DefaultDenominations()
	sheetRepo := gateway.NewCSVSheetRepository(table)
	reportRepo := gateway.NewFileReportRepository(*reportsDir, gateway.WithOverwrite(*overwrite))

	cashUpUseCase, err := usecase.NewCashUpUseCase(sheetRepo, reportRepo,
		usecase.WithDenominations(table),
		usecase.WithStartingFloat(startingFloat),
		usecase.WithCurrencySymbol(cfg.CurrencySymbol),
		usecase.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("Error setting up cash up: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	result, err := cashUpUseCase.CalculateFromSheet(ctx, *sheetFile, overrides)
	if err != nil {
		log.Fatalf("Cash up failed: %v", err)
	}

	var path string
	if *save {
		result, path, err = cashUpUseCase.SaveReport(ctx, result.CashUp)
		if err != nil {
			if errors.Is(err, domain.ErrReportExists) {
				log.Fatalf("Report not saved, rerun with -overwrite to replace it: %v", err)
			}
			log.Fatalf("Saving report failed: %v", err)
		}
	}

	if *format == "json" {
		resp := model.NewCalculationResponse(*result)
		resp.Path = path
		output, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			log.Fatalf("Failed to generate JSON report: %v", err)
		}
		fmt.Println(string(output))
		return
	}

	fmt.Println(cashUpUseCase.Render(*result))
	if suggestions := cashUpUseCase.RenderSuggestions(*result); suggestions != "" {
		fmt.Println()
		fmt.Println(suggestions)
	}
	if path != "" {
		fmt.Println()
		fmt.Printf("Report saved to %s\n", path)
	}
	logger.Debug("cash up finished", "id", result.ID, "saved", path != "")
}
