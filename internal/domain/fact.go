package domain

// FactKey is the composite surrogate key of a fact_sales row.
type FactKey struct {
	DateKey     int
	CustomerKey int64
	ProductKey  int64
	StoreKey    int64
}

// FactDelta is an increment to apply to a fact row: inserted as-is when the
// key is new, otherwise added onto the existing totals. Fact rows are never
// replaced wholesale.
type FactDelta struct {
	Key         FactKey
	Quantity    int64
	TotalAmount float64
}

// MergeSummary reports what a fact merge touched.
type MergeSummary struct {
	Affected        []FactKey
	MergedRows      int
	QuarantinedRows int
	QuarantinedIDs  []int64
}
