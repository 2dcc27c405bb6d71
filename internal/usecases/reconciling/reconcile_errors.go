package reconciling

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingBusinessKey means a dimension record arrived without its
	// natural identifier, so it cannot be reconciled at all.
	ErrMissingBusinessKey = errors.New("record missing business key")

	// ErrUnknownBusinessKey means a staged sale references a business key
	// that no dimension row covers even after reconciliation.
	ErrUnknownBusinessKey = errors.New("business key not present in dimension")
)

// DataIntegrityError carries which entity and key violated referential
// consistency. The fact merger reuses it for unresolvable staged sales.
type DataIntegrityError struct {
	Entity      string // customer | product | store | date
	BusinessKey string
	Err         error
}

func (e *DataIntegrityError) Error() string {
	if e.BusinessKey != "" {
		return fmt.Sprintf("%s %q: %s", e.Entity, e.BusinessKey, e.Err.Error())
	}
	return fmt.Sprintf("%s: %s", e.Entity, e.Err.Error())
}

func (e *DataIntegrityError) Unwrap() error {
	return e.Err
}
