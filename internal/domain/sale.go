package domain

import "time"

// StagedSale lifecycle states. A pending row is consumed exactly once: the
// orchestrator flips it to merged in the same transaction as the fact merge.
const (
	StagedStatusPending     = "pending"
	StagedStatusMerged      = "merged"
	StagedStatusQuarantined = "quarantined"
)

// SaleRecord is a raw transaction row exactly as the source system ships it.
// DateValue is textual and possibly ambiguous (day-first vs month-first);
// it is normalized at staging intake.
type SaleRecord struct {
	CustomerID string `json:"customer_id"`
	ProductID  string `json:"product_id"`
	StoreID    string `json:"store_id"`
	DateValue  string `json:"date_value"`
	Quantity   int    `json:"quantity"`
}

// StagedSale is a SaleRecord persisted to stg_sales with its date resolved to
// an unambiguous calendar day.
type StagedSale struct {
	ID         int64
	BatchID    string
	CustomerID string
	ProductID  string
	StoreID    string
	SaleDate   time.Time
	Quantity   int
	Status     string
}
