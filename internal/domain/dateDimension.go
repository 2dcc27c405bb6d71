package domain

import "time"

// DateDimensionEntry is a dim_date row. Rows are generated lazily for dates
// actually referenced by staged sales and are immutable once created.
type DateDimensionEntry struct {
	DateKey   int
	DateValue time.Time
	Year      int
	Month     int
	Day       int
}

// DateKeyFor encodes a calendar date as year*10000 + month*100 + day,
// e.g. 2024-01-05 -> 20240105.
func DateKeyFor(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// NewDateDimensionEntry derives the complete dimension row for a date.
func NewDateDimensionEntry(t time.Time) DateDimensionEntry {
	return DateDimensionEntry{
		DateKey:   DateKeyFor(t),
		DateValue: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC),
		Year:      t.Year(),
		Month:     int(t.Month()),
		Day:       t.Day(),
	}
}
