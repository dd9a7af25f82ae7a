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

// OutletUseCase CRUD use cases for barbershop locations.
type OutletUseCase struct {
	repo repository.OutletRepository
}

// NewOutletUseCase builds the use case.
func NewOutletUseCase(repo repository.OutletRepository) *OutletUseCase {
	return &OutletUseCase{repo: repo}
}

// Create registers a new outlet.
func (uc *OutletUseCase) Create(ctx context.Context, in dto.CreateOutletRequest) (*dto.OutletResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	outlet := &entity.Outlet{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, outlet); err != nil {
		return nil, err
	}
	return toOutletResponse(outlet), nil
}

// GetByID fetches an outlet by ID.
func (uc *OutletUseCase) GetByID(ctx context.Context, id string) (*dto.OutletResponse, error) {
	outlet, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if outlet == nil {
		return nil, nil
	}
	return toOutletResponse(outlet), nil
}

// Update patches an outlet. Nil fields are left untouched.
func (uc *OutletUseCase) Update(ctx context.Context, id string, in dto.UpdateOutletRequest) (*dto.OutletResponse, error) {
	outlet, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if outlet == nil {
		return nil, nil
	}
	if in.Name != nil {
		outlet.Name = *in.Name
	}
	if in.Address != nil {
		outlet.Address = *in.Address
	}
	if in.Phone != nil {
		outlet.Phone = *in.Phone
	}
	outlet.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, outlet); err != nil {
		return nil, err
	}
	return toOutletResponse(outlet), nil
}

// List lists every outlet. The chain is small; no pagination.
func (uc *OutletUseCase) List(ctx context.Context) (*dto.OutletListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OutletResponse, 0, len(list))
	for i := range list {
		items = append(items, *toOutletResponse(&list[i]))
	}
	return &dto.OutletListResponse{Items: items}, nil
}

func toOutletResponse(o *entity.Outlet) *dto.OutletResponse {
	if o == nil {
		return nil
	}
	return &dto.OutletResponse{
		ID:        o.ID,
		Name:      o.Name,
		Address:   o.Address,
		Phone:     o.Phone,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
