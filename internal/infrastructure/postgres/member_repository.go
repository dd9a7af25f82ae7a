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

var _ repository.MemberRepository = (*MemberRepo)(nil)

// MemberRepo member adapter over PostgreSQL (works with pool or tx).
type MemberRepo struct {
	q Querier
}

// NewMemberRepository builds the adapter. Pass a pool or a tx (Querier).
func NewMemberRepository(q Querier) *MemberRepo {
	return &MemberRepo{q: q}
}

// Create persists a new member. Duplicate phone numbers map to ErrDuplicate.
func (r *MemberRepo) Create(ctx context.Context, m *entity.Member) error {
	query := `
		INSERT INTO members (id, name, phone, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, m.ID, m.Name, m.Phone, m.Email, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create member: %w", err)
	}
	return nil
}

// GetByID fetches a member, nil when absent.
func (r *MemberRepo) GetByID(ctx context.Context, id string) (*entity.Member, error) {
	query := `
		SELECT id, name, phone, COALESCE(email, ''), created_at, updated_at
		FROM members WHERE id = $1`
	var m entity.Member
	err := r.q.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Name, &m.Phone, &m.Email, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get member: %w", err)
	}
	return &m, nil
}

// List lists members ordered by name.
func (r *MemberRepo) List(ctx context.Context, limit, offset int) ([]entity.Member, error) {
	query := `
		SELECT id, name, phone, COALESCE(email, ''), created_at, updated_at
		FROM members ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var list []entity.Member
	for rows.Next() {
		var m entity.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Phone, &m.Email, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Update persists member changes.
func (r *MemberRepo) Update(ctx context.Context, m *entity.Member) error {
	query := `
		UPDATE members
		SET name = $2, phone = $3, email = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, m.ID, m.Name, m.Phone, m.Email, m.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
