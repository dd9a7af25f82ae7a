package dto

import "time"

// CreateOutletRequest input to register a barbershop location.
type CreateOutletRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// UpdateOutletRequest input to update an outlet. Nil fields are left as-is.
type UpdateOutletRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

// OutletResponse outlet output.
type OutletResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OutletListResponse paginated outlet list.
type OutletListResponse struct {
	Items []OutletResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
