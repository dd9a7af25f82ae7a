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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo employee account adapter over PostgreSQL (works with pool or tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository builds the adapter. Pass a pool or a tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persists a new employee account.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, role, outlet_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8)`
	_, err := r.q.Exec(ctx, query,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Role, u.OutletID, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

const userSelect = `
	SELECT id, name, email, password_hash, role, COALESCE(outlet_id, ''), created_at, updated_at
	FROM users`

// GetByID fetches an account, nil when absent.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getOne(ctx, userSelect+" WHERE id = $1", id)
}

// GetByEmail fetches an account by email, nil when absent.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, userSelect+" WHERE email = $1", email)
}

// List lists accounts ordered by name.
func (r *UserRepo) List(ctx context.Context, limit, offset int) ([]entity.User, error) {
	rows, err := r.q.Query(ctx, userSelect+" ORDER BY name LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.OutletID, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func (r *UserRepo) getOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.OutletID, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
