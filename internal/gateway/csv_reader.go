package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"till-reconciliation/internal/domain"
)

// Row kinds understood in a cash-up sheet.
const (
	kindCount    = "count"
	kindReceipt  = "receipt"
	kindCashIn   = "cash_in"
	kindExpected = "expected"
	kindDate     = "date"
)

var sheetHeader = []string{"kind", "label", "value"}

// CSVSheetRepository implements the SheetRepository interface for CSV cash-up sheets.
//
// A sheet has the header "kind,label,value" followed by rows such as:
//
//	count,£20,4
//	receipt,,12.50
//	cash_in,Air hockey,15.00
//	expected,,100.00
//	date,,19/10/2026
type CSVSheetRepository struct {
	table domain.DenominationTable
}

// NewCSVSheetRepository creates a new repository that resolves labels against table.
func NewCSVSheetRepository(table domain.DenominationTable) *CSVSheetRepository {
	return &CSVSheetRepository{table: table}
}

// GetCashUpSheet reads and parses a cash-up sheet CSV file.
func (r *CSVSheetRepository) GetCashUpSheet(ctx context.Context, path string) (*domain.CashUp, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cash-up sheet %s: %w", path, err)
	}
	defer file.Close()

	cashUp, err := r.readSheet(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cashUp, nil
}

func (r *CSVSheetRepository) readSheet(in io.Reader) (*domain.CashUp, error) {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = len(sheetHeader)
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	for i, column := range sheetHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), column) {
			return nil, fmt.Errorf("%w: unexpected header %v, want %v", domain.ErrInvalidInput, header, sheetHeader)
		}
	}

	cashUp := &domain.CashUp{Counts: domain.NewCashCount(r.table)}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record: %w", err)
		}

		line, _ := reader.FieldPos(0)
		if err := r.applyRecord(cashUp, record); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	return cashUp, nil
}

func (r *CSVSheetRepository) applyRecord(cashUp *domain.CashUp, record []string) error {
	kind := strings.ToLower(strings.TrimSpace(record[0]))
	label := strings.TrimSpace(record[1])
	value := strings.TrimSpace(record[2])

	switch kind {
	case kindCount:
		i := r.table.Index(label)
		if i < 0 {
			return fmt.Errorf("%w: unknown denomination '%s'", domain.ErrInvalidInput, label)
		}
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: could not parse count '%s'", domain.ErrInvalidInput, value)
		}
		if n < 0 {
			return fmt.Errorf("%w: count for %s must not be negative", domain.ErrInvalidInput, label)
		}
		if cashUp.Counts[i] > math.MaxInt64-n {
			return fmt.Errorf("%w: total count for %s is too large", domain.ErrInvalidInput, label)
		}
		cashUp.Counts = cashUp.Counts.With(i, cashUp.Counts[i]+n)
	case kindReceipt:
		amount, err := domain.ParseAmount(value)
		if err != nil {
			return err
		}
		cashUp.Receipts = append(cashUp.Receipts, amount)
	case kindCashIn:
		if label == "" {
			return fmt.Errorf("%w: cash_in row needs a title", domain.ErrInvalidInput)
		}
		amount, err := domain.ParseAmount(value)
		if err != nil {
			return err
		}
		cashUp.CashIn = append(cashUp.CashIn, domain.CashInEntry{Title: label, Amount: amount})
	case kindExpected:
		amount, err := domain.ParseAmount(value)
		if err != nil {
			return err
		}
		cashUp.ExpectedTakings = amount
	case kindDate:
		date, err := domain.ParseDate(value)
		if err != nil {
			return err
		}
		cashUp.Date = date
	default:
		return fmt.Errorf("%w: unknown row kind '%s'", domain.ErrInvalidInput, record[0])
	}
	return nil
}
