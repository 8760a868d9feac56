package dataset

import (
	"github.com/matthieukhl/shopsight/internal/models"
)

// Dataset is an immutable in-memory snapshot of the cleaned customer
// transaction table. It is loaded once per reporting session; reports
// only ever read from it, so sharing one Dataset across goroutines
// needs no locking.
type Dataset struct {
	transactions []models.CustomerTransaction
	stats        LoadStats
}

// LoadStats summarizes what the cleaning pass did to the raw input.
type LoadStats struct {
	RowsRead        int  `json:"rows_read"`
	RowsLoaded      int  `json:"rows_loaded"`
	RowsSkipped     int  `json:"rows_skipped"`
	RatingsImputed  int  `json:"ratings_imputed"`
	AgeGroupDerived bool `json:"age_group_derived"`
}

// New wraps cleaned transactions in a Dataset. The caller hands over
// ownership of the slice and must not mutate it afterwards.
func New(transactions []models.CustomerTransaction, stats LoadStats) *Dataset {
	return &Dataset{transactions: transactions, stats: stats}
}

// Transactions returns the underlying rows. Read-only by convention.
func (d *Dataset) Transactions() []models.CustomerTransaction {
	return d.transactions
}

// Len returns the number of loaded transactions.
func (d *Dataset) Len() int {
	return len(d.transactions)
}

// Stats returns the load summary.
func (d *Dataset) Stats() LoadStats {
	return d.stats
}

// TotalRevenue sums purchase_amount across the whole dataset.
func (d *Dataset) TotalRevenue() float64 {
	var total float64
	for _, t := range d.transactions {
		total += t.PurchaseAmount
	}
	return total
}
