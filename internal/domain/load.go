package domain

import "time"

const (
	LoadRunSucceeded = "succeeded"
	LoadRunFailed    = "failed"
)

// BatchInput is everything a single load run consumes: the current dimension
// snapshot from the source system and the new transaction records.
type BatchInput struct {
	Snapshot SourceSnapshot `json:"snapshot"`
	Sales    []SaleRecord   `json:"sales"`
}

// Empty reports whether the input carries nothing to load.
func (b BatchInput) Empty() bool {
	return len(b.Sales) == 0 &&
		len(b.Snapshot.Customers) == 0 &&
		len(b.Snapshot.Products) == 0 &&
		len(b.Snapshot.Stores) == 0
}

// BatchResult summarizes a committed load run.
type BatchResult struct {
	BatchID   string `json:"batch_id"`
	Processed int    `json:"processed"`
	Skipped   int    `json:"skipped"`
	FactRows  int    `json:"fact_rows"`
}

// LoadRun is an audit record of one orchestrated run, committed outside the
// load transaction so failed runs keep their trail.
type LoadRun struct {
	ID          string    `json:"id"`
	BatchID     string    `json:"batch_id"`
	Processed   int       `json:"processed"`
	Quarantined int       `json:"quarantined"`
	Status      string    `json:"status"`
	Stage       string    `json:"stage"`
	Error       string    `json:"error,omitempty"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
}
