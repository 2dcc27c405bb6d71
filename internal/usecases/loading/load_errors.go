package loading

import (
	"errors"
	"fmt"
)

// Stages of a load run, reported on failure so operators know where a batch
// stopped. StageConnect failures never entered the transaction.
const (
	StageConnect   = "connect"
	StageIntake    = "intake"
	StageReconcile = "reconcile"
	StageDates     = "dates"
	StageMerge     = "merge"
	StageMark      = "mark"
)

var (
	// ErrDuplicateApplication means the watermark over the staged rows did
	// not advance as expected — some rows were already consumed. The
	// transaction aborts before commit, so totals cannot double-count.
	ErrDuplicateApplication = errors.New("staged batch already consumed")

	// ErrGenerateID wraps run-identifier generation failures.
	ErrGenerateID = errors.New("error generating load run ID")
)

// LoadError is the error a batch run surfaces: the base error plus which
// stage failed and for which batch.
type LoadError struct {
	Stage   string
	BatchID string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load batch %s failed at stage %s: %s", e.BatchID, e.Stage, e.Err.Error())
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
