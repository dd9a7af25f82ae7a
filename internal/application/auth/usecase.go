package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/primabarber/barberstock-api/internal/application/dto"
	"github.com/primabarber/barberstock-api/internal/domain"
	"github.com/primabarber/barberstock-api/internal/domain/entity"
	"github.com/primabarber/barberstock-api/internal/domain/repository"
	"github.com/primabarber/barberstock-api/pkg/jwt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase authentication use cases: employee registration and login.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	outletRepo repository.OutletRepository
	jwtCfg     JWTConfig
}

// NewAuthUseCase builds the auth use case.
func NewAuthUseCase(userRepo repository.UserRepository, outletRepo repository.OutletRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, outletRepo: outletRepo, jwtCfg: jwtCfg}
}

// RegisterUser creates an employee account: hashes the password with bcrypt
// and persists. Returns ErrEmailAlreadyExists when the email is taken.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	switch in.Role {
	case entity.RoleAdmin, entity.RoleKasir, entity.RoleGudang:
	default:
		return nil, domain.ErrInvalidInput
	}

	existing, _ := uc.userRepo.GetByEmail(ctx, in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	if in.OutletID != "" {
		outlet, err := uc.outletRepo.GetByID(ctx, in.OutletID)
		if err != nil {
			return nil, err
		}
		if outlet == nil {
			return nil, domain.ErrNotFound
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		OutletID:     in.OutletID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifies email/password, generates a JWT and returns token + profile.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.OutletID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
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
