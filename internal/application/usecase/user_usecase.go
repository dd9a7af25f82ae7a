package usecase

import (
	"context"

	"github.com/primabarber/barberstock-api/internal/application/dto"
	"github.com/primabarber/barberstock-api/internal/domain/entity"
	"github.com/primabarber/barberstock-api/internal/domain/repository"
)

// UserUseCase read use cases over employee accounts (admin screens).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase builds the use case.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID fetches an account by ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return entityToUserResponse(user), nil
}

// List lists accounts with pagination.
func (uc *UserUseCase) List(ctx context.Context, limit, offset int) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for i := range list {
		items = append(items, *entityToUserResponse(&list[i]))
	}
	return items, nil
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		OutletID: u.OutletID,
	}
}
