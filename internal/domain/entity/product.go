package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a retail product sold at the outlets (pomade, shampoo, razors...).
// CategoryName is the product group label shown on reports. Products with
// InventoryTracked=false are service-like items with unlimited availability.
type Product struct {
	ID               string
	Name             string
	CategoryName     string
	Price            decimal.Decimal
	InventoryTracked bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
