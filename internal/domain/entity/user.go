package entity

import "time"

// Employee roles.
const (
	RoleAdmin  = "admin"
	RoleKasir  = "kasir"  // cashier
	RoleGudang = "gudang" // stockkeeper
)

// User is a back-office employee account.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	OutletID     string // home outlet; empty for head-office admins
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
