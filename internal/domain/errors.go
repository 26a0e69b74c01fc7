package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput rejects a single request with malformed or out-of-range values.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPersistence reports that a cash-up report could not be written.
	// The calculated result stays valid when this is returned.
	ErrPersistence = errors.New("report persistence failed")

	// ErrReportExists is returned when a report for the same date is already on disk
	// and overwriting is disabled.
	ErrReportExists = fmt.Errorf("%w: report already exists", ErrPersistence)
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
