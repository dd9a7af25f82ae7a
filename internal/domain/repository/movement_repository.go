package repository

import (
	"context"
	"time"

	"github.com/primabarber/barberstock-api/internal/domain/entity"
)

// MovementRepository is the persistence port for stock movements.
// Movements are append-only; there is no update or delete.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error

	// ListApprovedInWindow returns APPROVED movements dated inside
	// [start, end] (inclusive calendar dates), optionally restricted to one
	// outlet by name. Pending and rejected movements never participate.
	ListApprovedInWindow(ctx context.Context, start, end time.Time, outletName string) ([]entity.StockMovement, error)

	// ListByProduct returns the movement history of a product, newest first.
	ListByProduct(ctx context.Context, productID string, limit, offset int) ([]entity.StockMovement, error)
}
