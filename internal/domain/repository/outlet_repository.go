package repository

import (
	"context"

	"github.com/primabarber/barberstock-api/internal/domain/entity"
)

// OutletRepository is the persistence port for outlets.
type OutletRepository interface {
	Create(ctx context.Context, outlet *entity.Outlet) error
	GetByID(ctx context.Context, id string) (*entity.Outlet, error)
	List(ctx context.Context) ([]entity.Outlet, error)
	Update(ctx context.Context, outlet *entity.Outlet) error
}
