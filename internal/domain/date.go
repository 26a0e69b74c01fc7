package domain

import (
	"strings"
	"time"
)

const (
	// ReportDateLayout is the DD/MM/YYYY form used in report headers.
	ReportDateLayout = "02/01/2006"

	minReportYear = 2000
	maxReportYear = 2100
)

// ParseDate accepts DD/MM/YYYY as typed at the till, or YYYY-MM-DD as sent by
// HTML date inputs.
func ParseDate(s string) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	for _, layout := range []string{ReportDateLayout, time.DateOnly} {
		date, err := time.Parse(layout, trimmed)
		if err != nil {
			continue
		}
		if date.Year() < minReportYear || date.Year() > maxReportYear {
			return time.Time{}, invalidf("date '%s' is outside %d-%d", s, minReportYear, maxReportYear)
		}
		return date, nil
	}
	return time.Time{}, invalidf("could not parse date '%s', use DD/MM/YYYY", s)
}
