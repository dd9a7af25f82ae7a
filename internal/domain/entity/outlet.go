package entity

import "time"

// Outlet is a physical barbershop location holding its own stock.
type Outlet struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
