package repository

import (
	"context"

	"github.com/primabarber/barberstock-api/internal/domain/entity"
)

// ProductRepository is the persistence port for products.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, limit, offset int) ([]entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
}
