package dto

import "time"

// MovementLineRequest one stock adjustment inside a batch submission.
type MovementLineRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Direction string `json:"direction" validate:"required,oneof=IN OUT"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
	Note      string `json:"note" validate:"max=500"`
}

// SubmitMovementsRequest batch of adjustments against one outlet. Lines are
// processed independently; a rejected line does not abort its siblings.
type SubmitMovementsRequest struct {
	OutletID string                `json:"outlet_id" validate:"required"`
	Date     time.Time             `json:"date"`
	Lines    []MovementLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// MovementLineResult per-line outcome of a batch submission.
type MovementLineResult struct {
	ProductID      string `json:"product_id"`
	Accepted       bool   `json:"accepted"`
	Error          string `json:"error,omitempty"`
	MovementID     string `json:"movement_id,omitempty"`
	QuantityBefore int64  `json:"quantity_before"`
	QuantityAfter  int64  `json:"quantity_after"`
}

// SubmitMovementsResponse batch outcome.
type SubmitMovementsResponse struct {
	Results []MovementLineResult `json:"results"`
}

// MovementResponse one recorded movement.
type MovementResponse struct {
	ID             string    `json:"id"`
	Date           time.Time `json:"date"`
	OutletName     string    `json:"outlet_name"`
	ProductName    string    `json:"product_name"`
	Direction      string    `json:"direction"`
	QuantityBefore int64     `json:"quantity_before"`
	QuantityDelta  int64     `json:"quantity_delta"`
	QuantityAfter  int64     `json:"quantity_after"`
	Note           string    `json:"note,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
