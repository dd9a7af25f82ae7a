package entity

import "time"

// InventoryItem is the current stock snapshot of a product at an outlet.
// QuantityOnHand is authoritative "as of now", independent of any report window.
// Products with InventoryTracked=false are treated as unlimited stock and never
// appear in stock reports.
type InventoryItem struct {
	ProductID        string
	ProductName      string
	CategoryName     string
	OutletID         string
	OutletName       string
	QuantityOnHand   int64
	InventoryTracked bool
	UpdatedAt        time.Time
	UpdatedBy        string // UserID of the last writer
}
