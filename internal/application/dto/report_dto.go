package dto

// StockLedgerQuery query parameters of the stock ledger report endpoints.
// Dates use the 2006-01-02 layout.
type StockLedgerQuery struct {
	StartDate    string `query:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      string `query:"end_date" validate:"required,datetime=2006-01-02"`
	OutletName   string `query:"outlet"`
	CategoryName string `query:"category"`
	ProductName  string `query:"product"`
}
