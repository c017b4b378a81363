// Package timefmt holds the date formats stored records use: a plain date
// for article update stamps and a German-locale display form for booking
// and activity timestamps.
package timefmt

import "time"

const (
	dateLayout    = "2006-01-02"
	displayLayout = "02.01.2006, 15:04:05"
)

// Date formats t as a date-only stamp, e.g. "2025-01-21".
func Date(t time.Time) string {
	return t.Format(dateLayout)
}

// Display formats t the way booking and activity rows show it,
// e.g. "21.01.2025, 14:30:45".
func Display(t time.Time) string {
	return t.Format(displayLayout)
}
