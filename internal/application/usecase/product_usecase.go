package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/primabarber/barberstock-api/internal/application/dto"
	"github.com/primabarber/barberstock-api/internal/domain"
	"github.com/primabarber/barberstock-api/internal/domain/entity"
	"github.com/primabarber/barberstock-api/internal/domain/repository"
)

// ProductUseCase CRUD use cases for products. Stock quantities are never
// edited here; they only change through movements and sales.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase builds the use case.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create creates a product. InventoryTracked defaults to true.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.CategoryName == "" {
		return nil, domain.ErrInvalidInput
	}
	tracked := true
	if in.InventoryTracked != nil {
		tracked = *in.InventoryTracked
	}
	now := time.Now()
	product := &entity.Product{
		ID:               uuid.New().String(),
		Name:             in.Name,
		CategoryName:     in.CategoryName,
		Price:            in.Price,
		InventoryTracked: tracked,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID fetches a product by ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update patches a product. Nil fields are left untouched.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.CategoryName != nil {
		product.CategoryName = *in.CategoryName
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.InventoryTracked != nil {
		product.InventoryTracked = *in.InventoryTracked
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lists products with pagination.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for i := range list {
		items = append(items, *toProductResponse(&list[i]))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		CategoryName:     p.CategoryName,
		Price:            p.Price,
		InventoryTracked: p.InventoryTracked,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
