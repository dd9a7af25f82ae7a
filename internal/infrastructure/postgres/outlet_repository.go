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

var _ repository.OutletRepository = (*OutletRepo)(nil)

// OutletRepo outlet adapter over PostgreSQL (works with pool or tx).
type OutletRepo struct {
	q Querier
}

// NewOutletRepository builds the adapter. Pass a pool or a tx (Querier).
func NewOutletRepository(q Querier) *OutletRepo {
	return &OutletRepo{q: q}
}

// Create persists a new outlet. Outlet names are unique; they are the join key
// used by reporting.
func (r *OutletRepo) Create(ctx context.Context, o *entity.Outlet) error {
	query := `
		INSERT INTO outlets (id, name, address, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, o.ID, o.Name, o.Address, o.Phone, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create outlet: %w", err)
	}
	return nil
}

// GetByID fetches an outlet, nil when absent.
func (r *OutletRepo) GetByID(ctx context.Context, id string) (*entity.Outlet, error) {
	query := `
		SELECT id, name, COALESCE(address, ''), COALESCE(phone, ''), created_at, updated_at
		FROM outlets WHERE id = $1`
	var o entity.Outlet
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.Name, &o.Address, &o.Phone, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get outlet: %w", err)
	}
	return &o, nil
}

// List lists every outlet ordered by name.
func (r *OutletRepo) List(ctx context.Context) ([]entity.Outlet, error) {
	query := `
		SELECT id, name, COALESCE(address, ''), COALESCE(phone, ''), created_at, updated_at
		FROM outlets ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list outlets: %w", err)
	}
	defer rows.Close()

	var list []entity.Outlet
	for rows.Next() {
		var o entity.Outlet
		if err := rows.Scan(&o.ID, &o.Name, &o.Address, &o.Phone, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan outlet: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// Update persists outlet changes.
func (r *OutletRepo) Update(ctx context.Context, o *entity.Outlet) error {
	query := `
		UPDATE outlets
		SET name = $2, address = $3, phone = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, o.ID, o.Name, o.Address, o.Phone, o.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update outlet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
