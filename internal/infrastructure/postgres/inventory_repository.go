package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/primabarber/barberstock-api/internal/domain"
	"github.com/primabarber/barberstock-api/internal/domain/entity"
	"github.com/primabarber/barberstock-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo snapshot adapter over PostgreSQL (works with pool or tx).
// One row per (product, outlet) in inventory_levels.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository builds the adapter. Pass a pool or a tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const inventorySelect = `
	SELECT il.product_id, p.name, p.category_name, il.outlet_id, o.name,
	       il.quantity, p.inventory_tracked, il.updated_at, COALESCE(il.updated_by, '')
	FROM inventory_levels il
	JOIN products p ON p.id = il.product_id
	JOIN outlets o ON o.id = il.outlet_id`

// ListCurrent returns the tracked snapshot, optionally filtered by outlet and
// category name. Untracked products are excluded here so reporting never sees
// them.
func (r *InventoryRepo) ListCurrent(ctx context.Context, outletName, categoryName string) ([]entity.InventoryItem, error) {
	query := inventorySelect + `
	WHERE p.inventory_tracked`
	args := []any{}
	pos := 1
	if outletName != "" {
		query += fmt.Sprintf(" AND o.name = $%d", pos)
		args = append(args, outletName)
		pos++
	}
	if categoryName != "" {
		query += fmt.Sprintf(" AND p.category_name = $%d", pos)
		args = append(args, categoryName)
	}
	query += " ORDER BY p.category_name, p.name, o.name"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	var list []entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(
			&it.ProductID, &it.ProductName, &it.CategoryName, &it.OutletID, &it.OutletName,
			&it.QuantityOnHand, &it.InventoryTracked, &it.UpdatedAt, &it.UpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// Get returns the snapshot row for a product at an outlet, nil when absent.
func (r *InventoryRepo) Get(ctx context.Context, productID, outletID string) (*entity.InventoryItem, error) {
	query := inventorySelect + `
	WHERE il.product_id = $1 AND il.outlet_id = $2`
	item, err := r.scanOne(ctx, query, productID, outletID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return item, nil
}

// GetForUpdate locks the snapshot row (SELECT FOR UPDATE OF il) and returns
// it. Returns ErrNotFound when the product has no snapshot at the outlet.
func (r *InventoryRepo) GetForUpdate(ctx context.Context, productID, outletID string) (*entity.InventoryItem, error) {
	query := inventorySelect + `
	WHERE il.product_id = $1 AND il.outlet_id = $2
	FOR UPDATE OF il`
	item, err := r.scanOne(ctx, query, productID, outletID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get inventory item for update: %w", err)
	}
	return item, nil
}

// UpdateQuantity sets the new on-hand quantity and records the acting user.
func (r *InventoryRepo) UpdateQuantity(ctx context.Context, productID, outletID string, quantity int64, updatedBy string) error {
	query := `
		UPDATE inventory_levels
		SET quantity = $3, updated_at = now(), updated_by = $4
		WHERE product_id = $1 AND outlet_id = $2`
	tag, err := r.q.Exec(ctx, query, productID, outletID, quantity, updatedBy)
	if err != nil {
		return fmt.Errorf("update inventory quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *InventoryRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&it.ProductID, &it.ProductName, &it.CategoryName, &it.OutletID, &it.OutletName,
		&it.QuantityOnHand, &it.InventoryTracked, &it.UpdatedAt, &it.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}
