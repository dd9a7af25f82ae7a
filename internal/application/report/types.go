package report

import "time"

// Filter are the stock ledger report parameters. StartDate and EndDate are
// required inclusive calendar dates. OutletName and CategoryName are exact-match
// filters applied to the inventory snapshot query. ProductNameContains is a
// case-insensitive substring filter applied client-side after the query.
type Filter struct {
	StartDate           time.Time `json:"start_date"`
	EndDate             time.Time `json:"end_date"`
	OutletName          string    `json:"outlet_name,omitempty"`
	CategoryName        string    `json:"category_name,omitempty"`
	ProductNameContains string    `json:"product_name_contains,omitempty"`
}

// Row is one reconciled (product, outlet) line of the stock ledger report.
// Invariant: Closing == max(0, Opening + StockIn + Returned - StockOut - Sold).
type Row struct {
	CategoryName string `json:"category_name"`
	ProductName  string `json:"product_name"`
	OutletName   string `json:"outlet_name"`
	Opening      int64  `json:"opening"`
	StockIn      int64  `json:"stock_in"`
	Returned     int64  `json:"returned"`
	Sold         int64  `json:"sold"`
	StockOut     int64  `json:"stock_out"`
	Closing      int64  `json:"closing"`
	Status       string `json:"status"` // NORMAL | LOW_STOCK | OUT_OF_STOCK
}

// Totals are the column-wise sums over all emitted rows.
type Totals struct {
	Opening  int64 `json:"opening"`
	StockIn  int64 `json:"stock_in"`
	Returned int64 `json:"returned"`
	Sold     int64 `json:"sold"`
	StockOut int64 `json:"stock_out"`
	Closing  int64 `json:"closing"`
}

// Report is the full stock ledger result: ordered rows, totals, and the echoed
// filter for display captioning.
type Report struct {
	Filter Filter `json:"filter"`
	Rows   []Row  `json:"rows"`
	Totals Totals `json:"totals"`
}
