package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/primabarber/barberstock-api/internal/domain/entity"
	"github.com/primabarber/barberstock-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo StockMovement adapter over PostgreSQL (works with pool or tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository builds the adapter. Pass a pool or a tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persists a stock movement. Movements are append-only.
func (r *MovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements
			(id, date, outlet_id, product_id, direction, quantity_before, quantity_delta, quantity_after, approval_status, note, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	createdBy := (*string)(nil)
	if m.CreatedBy != "" {
		createdBy = &m.CreatedBy
	}
	_, err := r.q.Exec(ctx, query,
		m.ID, m.Date, m.OutletID, m.ProductID, m.Direction,
		m.QuantityBefore, m.QuantityDelta, m.QuantityAfter,
		m.ApprovalStatus, m.Note, m.CreatedAt, createdBy,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

const movementSelect = `
	SELECT sm.id, sm.date, sm.outlet_id, o.name, sm.product_id, p.name, p.category_name,
	       sm.direction, sm.quantity_before, sm.quantity_delta, sm.quantity_after,
	       sm.approval_status, COALESCE(sm.note, ''), sm.created_at, COALESCE(sm.created_by, '')
	FROM stock_movements sm
	JOIN products p ON p.id = sm.product_id
	JOIN outlets o ON o.id = sm.outlet_id`

// ListApprovedInWindow returns APPROVED movements dated inside [start, end],
// optionally restricted to one outlet by name.
func (r *MovementRepo) ListApprovedInWindow(ctx context.Context, start, end time.Time, outletName string) ([]entity.StockMovement, error) {
	query := movementSelect + `
	WHERE sm.approval_status = $1 AND sm.date >= $2 AND sm.date <= $3`
	args := []any{entity.ApprovalApproved, start, end}
	if outletName != "" {
		query += " AND o.name = $4"
		args = append(args, outletName)
	}
	query += " ORDER BY sm.date, sm.id"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list approved movements: %w", err)
	}
	defer rows.Close()

	var list []entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(
			&m.ID, &m.Date, &m.OutletID, &m.OutletName, &m.ProductID, &m.ProductName, &m.CategoryName,
			&m.Direction, &m.QuantityBefore, &m.QuantityDelta, &m.QuantityAfter,
			&m.ApprovalStatus, &m.Note, &m.CreatedAt, &m.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// ListByProduct returns the movement history of a product, newest first.
func (r *MovementRepo) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]entity.StockMovement, error) {
	query := movementSelect + `
	WHERE sm.product_id = $1
	ORDER BY sm.date DESC, sm.created_at DESC
	LIMIT $2 OFFSET $3`

	rows, err := r.q.Query(ctx, query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements by product: %w", err)
	}
	defer rows.Close()

	var list []entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(
			&m.ID, &m.Date, &m.OutletID, &m.OutletName, &m.ProductID, &m.ProductName, &m.CategoryName,
			&m.Direction, &m.QuantityBefore, &m.QuantityDelta, &m.QuantityAfter,
			&m.ApprovalStatus, &m.Note, &m.CreatedAt, &m.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
