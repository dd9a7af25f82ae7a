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

// MemberUseCase CRUD use cases for registered customers.
type MemberUseCase struct {
	repo repository.MemberRepository
}

// NewMemberUseCase builds the use case.
func NewMemberUseCase(repo repository.MemberRepository) *MemberUseCase {
	return &MemberUseCase{repo: repo}
}

// Create registers a new member.
func (uc *MemberUseCase) Create(ctx context.Context, in dto.CreateMemberRequest) (*dto.MemberResponse, error) {
	if in.Name == "" || in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	member := &entity.Member{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, member); err != nil {
		return nil, err
	}
	return toMemberResponse(member), nil
}

// GetByID fetches a member by ID.
func (uc *MemberUseCase) GetByID(ctx context.Context, id string) (*dto.MemberResponse, error) {
	member, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, nil
	}
	return toMemberResponse(member), nil
}

// Update patches a member. Nil fields are left untouched.
func (uc *MemberUseCase) Update(ctx context.Context, id string, in dto.UpdateMemberRequest) (*dto.MemberResponse, error) {
	member, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, nil
	}
	if in.Name != nil {
		member.Name = *in.Name
	}
	if in.Phone != nil {
		member.Phone = *in.Phone
	}
	if in.Email != nil {
		member.Email = *in.Email
	}
	member.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, member); err != nil {
		return nil, err
	}
	return toMemberResponse(member), nil
}

// List lists members with pagination.
func (uc *MemberUseCase) List(ctx context.Context, limit, offset int) (*dto.MemberListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MemberResponse, 0, len(list))
	for i := range list {
		items = append(items, *toMemberResponse(&list[i]))
	}
	return &dto.MemberListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toMemberResponse(m *entity.Member) *dto.MemberResponse {
	if m == nil {
		return nil
	}
	return &dto.MemberResponse{
		ID:        m.ID,
		Name:      m.Name,
		Phone:     m.Phone,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
