package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest input to create a product.
type CreateProductRequest struct {
	Name             string          `json:"name" validate:"required,min=1,max=200"`
	CategoryName     string          `json:"category_name" validate:"required,min=1,max=100"`
	Price            decimal.Decimal `json:"price"`
	InventoryTracked *bool           `json:"inventory_tracked"`
}

// UpdateProductRequest input to update a product. Nil fields are left as-is.
type UpdateProductRequest struct {
	Name             *string          `json:"name" validate:"omitempty,min=1,max=200"`
	CategoryName     *string          `json:"category_name" validate:"omitempty,min=1,max=100"`
	Price            *decimal.Decimal `json:"price"`
	InventoryTracked *bool            `json:"inventory_tracked"`
}

// ProductResponse product output.
type ProductResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	CategoryName     string          `json:"category_name"`
	Price            decimal.Decimal `json:"price"`
	InventoryTracked bool            `json:"inventory_tracked"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ProductListResponse paginated product list.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
