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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo product adapter over PostgreSQL (works with pool or tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the adapter. Pass a pool or a tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persists a new product. Duplicate names map to ErrDuplicate.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (id, name, category_name, price, inventory_tracked, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.CategoryName, p.Price, p.InventoryTracked, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// GetByID fetches a product, nil when absent.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT id, name, category_name, price, inventory_tracked, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.CategoryName, &p.Price, &p.InventoryTracked, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List lists products ordered by category and name.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]entity.Product, error) {
	query := `
		SELECT id, name, category_name, price, inventory_tracked, created_at, updated_at
		FROM products
		ORDER BY category_name, name
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.CategoryName, &p.Price, &p.InventoryTracked, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update persists product changes.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, category_name = $3, price = $4, inventory_tracked = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.CategoryName, p.Price, p.InventoryTracked, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
