package staging

import (
	"errors"
	"fmt"
)

var (
	// ErrAmbiguousDate means the value parses under both day-first and
	// month-first conventions and no convention is configured.
	ErrAmbiguousDate = errors.New("ambiguous date value")

	// ErrUnparseableDate means the value matches no supported calendar form.
	ErrUnparseableDate = errors.New("unparseable date value")
)

// ParseError rejects one raw sale record, identifying it by position so the
// feed owner can find the offending line. The record is never silently
// coerced to a guessed date.
type ParseError struct {
	Record int    // zero-based position in the ingested batch
	Value  string // the raw date text
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("record %d: %s: %q", e.Record, e.Err.Error(), e.Value)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
