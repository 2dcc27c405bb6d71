package domain

// Dimension records carry a business key assigned by the source system plus
// descriptive attributes. Surrogate keys live only in the warehouse and are
// assigned on first sight, then never change (type-1 dimensions: attribute
// updates are last-write-wins, no history kept).

type Customer struct {
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	Region       string `json:"region"`
}

type Product struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
}

type Store struct {
	StoreID   string `json:"store_id"`
	StoreName string `json:"store_name"`
	Location  string `json:"location"`
}

// SourceSnapshot groups the dimension record streams that arrive with a batch.
type SourceSnapshot struct {
	Customers []Customer `json:"customers"`
	Products  []Product  `json:"products"`
	Stores    []Store    `json:"stores"`
}

// KeyMappings holds the business-key to surrogate-key resolutions produced by
// a run, plus the reconciled product prices the fact merge prices against.
// DateKeys is filled in by the date dimension generator, keyed by the
// time.DateOnly form of the calendar date.
type KeyMappings struct {
	CustomerKeys  map[string]int64
	ProductKeys   map[string]int64
	StoreKeys     map[string]int64
	ProductPrices map[string]float64
	DateKeys      map[string]int
}
