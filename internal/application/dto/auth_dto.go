package dto

// RegisterRequest input to create an employee account.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=admin kasir gudang"`
	OutletID string `json:"outlet_id"`
}

// LoginRequest credentials input.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token plus the authenticated profile.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse employee account output. The password hash never leaves the
// server.
type UserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	OutletID string `json:"outlet_id,omitempty"`
}
