package repository

import (
	"context"
	"time"
)

// ProductOutletQuantity is an aggregated quantity for one (product, outlet)
// pair, as produced by the sales/returns sum queries.
type ProductOutletQuantity struct {
	ProductName string
	OutletName  string
	Quantity    int64
}

// SalesRepository is the read port over transaction line items. Sales and
// returns are two status-filtered views over the same rows: completed
// transactions count as sales, cancelled ones as returns.
type SalesRepository interface {
	// SumSales aggregates sold quantities per (product, outlet) for line items
	// whose parent transaction is completed and dated inside [start, end].
	SumSales(ctx context.Context, start, end time.Time, outletName string) ([]ProductOutletQuantity, error)

	// SumReturns aggregates returned quantities per (product, outlet) for line
	// items whose parent transaction is cancelled and dated inside [start, end].
	SumReturns(ctx context.Context, start, end time.Time, outletName string) ([]ProductOutletQuantity, error)
}
