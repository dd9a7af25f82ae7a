package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/primabarber/barberstock-api/internal/domain/entity"
	"github.com/primabarber/barberstock-api/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo read adapter over the POS transaction tables. Sales and returns
// are the same aggregation with a different parent-transaction status.
type SalesRepo struct {
	q Querier
}

// NewSalesRepository builds the adapter. Pass a pool or a tx (Querier).
func NewSalesRepository(q Querier) *SalesRepo {
	return &SalesRepo{q: q}
}

// SumSales aggregates sold quantities per (product, outlet) over completed
// transactions dated inside [start, end].
func (r *SalesRepo) SumSales(ctx context.Context, start, end time.Time, outletName string) ([]repository.ProductOutletQuantity, error) {
	return r.sumByStatus(ctx, entity.TransactionCompleted, start, end, outletName)
}

// SumReturns aggregates returned quantities per (product, outlet) over
// cancelled transactions dated inside [start, end].
func (r *SalesRepo) SumReturns(ctx context.Context, start, end time.Time, outletName string) ([]repository.ProductOutletQuantity, error) {
	return r.sumByStatus(ctx, entity.TransactionCancelled, start, end, outletName)
}

func (r *SalesRepo) sumByStatus(ctx context.Context, status string, start, end time.Time, outletName string) ([]repository.ProductOutletQuantity, error) {
	query := `
		SELECT p.name, o.name, COALESCE(SUM(td.quantity), 0)
		FROM transaction_details td
		JOIN transactions t ON t.id = td.transaction_id
		JOIN products p ON p.id = td.product_id
		JOIN outlets o ON o.id = t.outlet_id
		WHERE t.status = $1 AND t.order_date >= $2 AND t.order_date <= $3`
	args := []any{status, start, end}
	if outletName != "" {
		query += " AND o.name = $4"
		args = append(args, outletName)
	}
	query += " GROUP BY p.name, o.name"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sum %s transactions: %w", status, err)
	}
	defer rows.Close()

	var list []repository.ProductOutletQuantity
	for rows.Next() {
		var q repository.ProductOutletQuantity
		if err := rows.Scan(&q.ProductName, &q.OutletName, &q.Quantity); err != nil {
			return nil, fmt.Errorf("scan %s sum: %w", status, err)
		}
		list = append(list, q)
	}
	return list, rows.Err()
}
