package entity

import "time"

// Movement directions.
const (
	DirectionIn  = "IN"  // stock received into an outlet
	DirectionOut = "OUT" // stock issued out of an outlet
)

// Approval statuses for stock movements. Every movement is written as APPROVED;
// PENDING and REJECTED exist in the schema for a manager-approval flow that was
// never wired up, and only APPROVED records count toward any report.
const (
	ApprovalApproved = "APPROVED"
	ApprovalPending  = "PENDING"
	ApprovalRejected = "REJECTED"
)

// StockMovement is one recorded stock adjustment for a product at an outlet.
// Movements are append-only: there is no update or delete path.
type StockMovement struct {
	ID             string
	Date           time.Time
	OutletID       string
	OutletName     string
	ProductID      string
	ProductName    string
	CategoryName   string
	Direction      string // IN | OUT
	QuantityBefore int64
	QuantityDelta  int64 // positive for IN, negative for OUT
	QuantityAfter  int64 // QuantityBefore + QuantityDelta
	ApprovalStatus string
	Note           string
	CreatedAt      time.Time
	CreatedBy      string // UserID
}
