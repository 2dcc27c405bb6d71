package staging

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateOrder is the convention used to read numeric dates like 03/04/2024.
type DateOrder string

const (
	// OrderStrict accepts only unambiguous values.
	OrderStrict DateOrder = "strict"
	// OrderDayFirst reads 03/04/2024 as 3 April (the source system's export
	// convention).
	OrderDayFirst DateOrder = "day-first"
	// OrderMonthFirst reads 03/04/2024 as March 4.
	OrderMonthFirst DateOrder = "month-first"
)

// ParseDateOrder maps the configuration string onto a DateOrder, defaulting
// unknown values to strict so misconfiguration can't silently pick a side.
func ParseDateOrder(s string) DateOrder {
	switch DateOrder(strings.ToLower(strings.TrimSpace(s))) {
	case OrderDayFirst:
		return OrderDayFirst
	case OrderMonthFirst:
		return OrderMonthFirst
	default:
		return OrderStrict
	}
}

// DateNormalizer turns the source system's textual dates into calendar days.
// ISO dates (2024-01-05) are always accepted. Slash- or dash-separated
// numeric dates are resolved by the configured order; under OrderStrict a
// value readable both ways is rejected rather than guessed.
type DateNormalizer struct {
	order DateOrder
}

func NewDateNormalizer(order DateOrder) *DateNormalizer {
	return &DateNormalizer{order: order}
}

func (n *DateNormalizer) Normalize(value string) (time.Time, error) {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return time.Time{}, ErrUnparseableDate
	}

	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}

	parts := splitDateParts(raw)
	if len(parts) != 3 {
		return time.Time{}, ErrUnparseableDate
	}

	// Year-first numeric forms (2024/01/05) are unambiguous.
	if len(parts[0]) == 4 {
		return buildDate(parts[0], parts[1], parts[2])
	}
	if len(parts[2]) != 4 {
		return time.Time{}, ErrUnparseableDate
	}

	a, errA := strconv.Atoi(parts[0])
	b, errB := strconv.Atoi(parts[1])
	if errA != nil || errB != nil {
		return time.Time{}, ErrUnparseableDate
	}

	switch n.order {
	case OrderDayFirst:
		return buildDate(parts[2], parts[1], parts[0])
	case OrderMonthFirst:
		return buildDate(parts[2], parts[0], parts[1])
	default:
		// Without a convention, accept only values where just one reading is
		// a valid calendar date.
		dayFirstValid := b >= 1 && b <= 12 && a >= 1 && a <= 31
		monthFirstValid := a >= 1 && a <= 12 && b >= 1 && b <= 31
		if dayFirstValid && monthFirstValid && a != b {
			return time.Time{}, ErrAmbiguousDate
		}
		if dayFirstValid {
			return buildDate(parts[2], parts[1], parts[0])
		}
		if monthFirstValid {
			return buildDate(parts[2], parts[0], parts[1])
		}
		return time.Time{}, ErrUnparseableDate
	}
}

func splitDateParts(raw string) []string {
	sep := "/"
	if !strings.Contains(raw, "/") {
		sep = "-"
	}
	return strings.Split(raw, sep)
}

// buildDate assembles and validates a date from textual components,
// rejecting overflow values like 31/02 that time.Date would normalize away.
func buildDate(yearStr, monthStr, dayStr string) (time.Time, error) {
	year, errY := strconv.Atoi(yearStr)
	month, errM := strconv.Atoi(monthStr)
	day, errD := strconv.Atoi(dayStr)
	if errY != nil || errM != nil || errD != nil {
		return time.Time{}, ErrUnparseableDate
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, ErrUnparseableDate
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: no such calendar day", ErrUnparseableDate)
	}

	return t, nil
}
