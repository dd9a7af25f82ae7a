package repository

import (
	"context"

	"github.com/primabarber/barberstock-api/internal/domain/entity"
)

// UserRepository is the persistence port for employee accounts.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, limit, offset int) ([]entity.User, error)
}
