package repository

import (
	"context"

	"github.com/primabarber/barberstock-api/internal/domain/entity"
)

// MemberRepository is the persistence port for chain members.
type MemberRepository interface {
	Create(ctx context.Context, member *entity.Member) error
	GetByID(ctx context.Context, id string) (*entity.Member, error)
	List(ctx context.Context, limit, offset int) ([]entity.Member, error)
	Update(ctx context.Context, member *entity.Member) error
}
