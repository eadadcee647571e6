package utils

import (
	"strings"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutTripDate = "02-01-2006"
	layoutExport   = "02/01/2006"
)

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// FormatTripDate renders DD-MM-YYYY, the date part of a trip name.
// The calendar date is taken as stored, without timezone conversion.
func FormatTripDate(t time.Time) string {
	return t.Format(layoutTripDate)
}

// FormatExportDate renders DD/MM/YYYY for CSV exports.
func FormatExportDate(t time.Time) string {
	return t.Format(layoutExport)
}
