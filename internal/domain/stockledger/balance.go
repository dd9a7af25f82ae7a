// Package stockledger holds the pure balance arithmetic of the stock ledger
// report (domain service, no I/O).
package stockledger

// LowStockThreshold is the closing balance at or below which a product is
// flagged LOW_STOCK. Fixed by business rule, not configurable.
const LowStockThreshold = 10

// Row statuses.
const (
	StatusNormal     = "NORMAL"
	StatusLowStock   = "LOW_STOCK"
	StatusOutOfStock = "OUT_OF_STOCK"
)

// Opening reconstructs the balance at the start of the reporting window by
// reversing the window's net effect out of the current on-hand quantity:
//
//	opening = max(0, onHand + stockOut + sold - stockIn - returned)
//
// This is an approximation, not a ledger replay: onHand reflects all activity
// up to now, so any movement between the window end and now skews the result.
// Known limitation of the reporting rule.
func Opening(onHand, stockIn, stockOut, sold, returned int64) int64 {
	return clamp(onHand + stockOut + sold - stockIn - returned)
}

// Closing derives the balance at the end of the window from the (already
// clamped) opening balance:
//
//	closing = max(0, opening + stockIn + returned - stockOut - sold)
func Closing(opening, stockIn, stockOut, sold, returned int64) int64 {
	return clamp(opening + stockIn + returned - stockOut - sold)
}

// Classify maps a closing balance to its display status.
func Classify(closing int64) string {
	switch {
	case closing <= 0:
		return StatusOutOfStock
	case closing <= LowStockThreshold:
		return StatusLowStock
	default:
		return StatusNormal
	}
}

func clamp(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
