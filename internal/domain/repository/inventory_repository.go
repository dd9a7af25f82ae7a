package repository

import (
	"context"

	"github.com/primabarber/barberstock-api/internal/domain/entity"
)

// InventoryRepository is the port for the per-outlet stock snapshot.
// GetForUpdate and UpdateQuantity are meant to run inside a transaction
// (repository instance bound to the tx) so the row stays locked between the
// read and the write.
type InventoryRepository interface {
	// ListCurrent returns tracked inventory items, optionally filtered by
	// outlet name and category name (exact match). Untracked products are
	// excluded at the query level.
	ListCurrent(ctx context.Context, outletName, categoryName string) ([]entity.InventoryItem, error)

	// Get returns the snapshot row for a product at an outlet, nil when absent.
	Get(ctx context.Context, productID, outletID string) (*entity.InventoryItem, error)

	// GetForUpdate locks the row (SELECT FOR UPDATE) and returns it, or
	// ErrNotFound when the product has no snapshot at the outlet.
	GetForUpdate(ctx context.Context, productID, outletID string) (*entity.InventoryItem, error)

	// UpdateQuantity sets the new on-hand quantity and records the acting user.
	UpdateQuantity(ctx context.Context, productID, outletID string, quantity int64, updatedBy string) error
}
