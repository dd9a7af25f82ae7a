package dto

import "time"

// CreateMemberRequest input to register a customer.
type CreateMemberRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Phone string `json:"phone" validate:"required,min=5,max=30"`
	Email string `json:"email" validate:"omitempty,email"`
}

// UpdateMemberRequest input to update a customer. Nil fields are left as-is.
type UpdateMemberRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=200"`
	Phone *string `json:"phone" validate:"omitempty,min=5,max=30"`
	Email *string `json:"email" validate:"omitempty,email"`
}

// MemberResponse customer output.
type MemberResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MemberListResponse paginated customer list.
type MemberListResponse struct {
	Items []MemberResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
