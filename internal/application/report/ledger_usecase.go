package report

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/primabarber/barberstock-api/internal/domain"
	"github.com/primabarber/barberstock-api/internal/domain/entity"
	"github.com/primabarber/barberstock-api/internal/domain/repository"
	"github.com/primabarber/barberstock-api/internal/domain/stockledger"
)

// defaultFetchTimeout bounds each external query issued by the engine. A slow
// source surfaces as a DataSourceError instead of hanging the report.
const defaultFetchTimeout = 15 * time.Second

// LedgerUseCase builds the stock ledger report: per (product, outlet) pair it
// reconciles opening balance, stock in/out, sales, returns and closing balance
// over a date window. Read-only; no state is mutated.
type LedgerUseCase struct {
	invRepo      repository.InventoryRepository
	movRepo      repository.MovementRepository
	salesRepo    repository.SalesRepository
	fetchTimeout time.Duration
}

// NewLedgerUseCase wires the engine to its three read collaborators.
func NewLedgerUseCase(
	invRepo repository.InventoryRepository,
	movRepo repository.MovementRepository,
	salesRepo repository.SalesRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		invRepo:      invRepo,
		movRepo:      movRepo,
		salesRepo:    salesRepo,
		fetchTimeout: defaultFetchTimeout,
	}
}

// pairKey joins movement, sales and return sums to an inventory item.
// Product name is the join key across sources; no surrogate ID is guaranteed
// stable between the snapshot and the transaction views.
type pairKey struct {
	product string
	outlet  string
}

// windowSums are the four movement-category sums of one pair inside the window.
type windowSums struct {
	stockIn  int64
	stockOut int64
	sold     int64
	returned int64
}

func (s windowSums) zero() bool {
	return s.stockIn == 0 && s.stockOut == 0 && s.sold == 0 && s.returned == 0
}

// BuildReport computes the stock ledger report for the given filter.
//
// The four source queries run sequentially; if any of them fails the whole
// computation aborts with a DataSourceError and no partial rows are returned.
// Only inventory-tracked products are considered, and pairs with zero activity
// in the window are dropped.
func (uc *LedgerUseCase) BuildReport(ctx context.Context, f Filter) (*Report, error) {
	if f.StartDate.IsZero() || f.EndDate.IsZero() || f.EndDate.Before(f.StartDate) {
		return nil, domain.ErrInvalidInput
	}

	items, err := uc.fetchInventory(ctx, f)
	if err != nil {
		return nil, err
	}
	items = filterByProductName(items, f.ProductNameContains)

	sums, err := uc.fetchWindowSums(ctx, f)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(items))
	for _, item := range items {
		s := sums[pairKey{product: item.ProductName, outlet: item.OutletName}]
		if s.zero() {
			// No activity in the window: not reported, even if in stock.
			continue
		}
		opening := stockledger.Opening(item.QuantityOnHand, s.stockIn, s.stockOut, s.sold, s.returned)
		closing := stockledger.Closing(opening, s.stockIn, s.stockOut, s.sold, s.returned)
		rows = append(rows, Row{
			CategoryName: item.CategoryName,
			ProductName:  item.ProductName,
			OutletName:   item.OutletName,
			Opening:      opening,
			StockIn:      s.stockIn,
			Returned:     s.returned,
			Sold:         s.sold,
			StockOut:     s.stockOut,
			Closing:      closing,
			Status:       stockledger.Classify(closing),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].CategoryName != rows[j].CategoryName {
			return rows[i].CategoryName < rows[j].CategoryName
		}
		if rows[i].ProductName != rows[j].ProductName {
			return rows[i].ProductName < rows[j].ProductName
		}
		return rows[i].OutletName < rows[j].OutletName
	})

	return &Report{
		Filter: f,
		Rows:   rows,
		Totals: sumTotals(rows),
	}, nil
}

// fetchInventory loads the tracked snapshot with outlet/category filters
// applied at the query. The product-name substring filter is NOT pushed down;
// it is applied afterwards, client-side, mirroring the reporting rule.
func (uc *LedgerUseCase) fetchInventory(ctx context.Context, f Filter) ([]entity.InventoryItem, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, uc.fetchTimeout)
	defer cancel()
	items, err := uc.invRepo.ListCurrent(fetchCtx, f.OutletName, f.CategoryName)
	if err != nil {
		return nil, &domain.DataSourceError{Source: "inventory", Err: err}
	}
	return items, nil
}

// fetchWindowSums issues the movement, sales and return queries and folds the
// results into per-pair sums. Movement magnitudes drive the in/out totals
// regardless of the stored delta sign.
func (uc *LedgerUseCase) fetchWindowSums(ctx context.Context, f Filter) (map[pairKey]windowSums, error) {
	sums := make(map[pairKey]windowSums)

	movCtx, cancelMov := context.WithTimeout(ctx, uc.fetchTimeout)
	defer cancelMov()
	movements, err := uc.movRepo.ListApprovedInWindow(movCtx, f.StartDate, f.EndDate, f.OutletName)
	if err != nil {
		return nil, &domain.DataSourceError{Source: "movements", Err: err}
	}
	for _, m := range movements {
		k := pairKey{product: m.ProductName, outlet: m.OutletName}
		s := sums[k]
		switch m.Direction {
		case entity.DirectionIn:
			s.stockIn += abs(m.QuantityDelta)
		case entity.DirectionOut:
			s.stockOut += abs(m.QuantityDelta)
		}
		sums[k] = s
	}

	salesCtx, cancelSales := context.WithTimeout(ctx, uc.fetchTimeout)
	defer cancelSales()
	sales, err := uc.salesRepo.SumSales(salesCtx, f.StartDate, f.EndDate, f.OutletName)
	if err != nil {
		return nil, &domain.DataSourceError{Source: "sales", Err: err}
	}
	for _, q := range sales {
		k := pairKey{product: q.ProductName, outlet: q.OutletName}
		s := sums[k]
		s.sold += q.Quantity
		sums[k] = s
	}

	retCtx, cancelRet := context.WithTimeout(ctx, uc.fetchTimeout)
	defer cancelRet()
	returns, err := uc.salesRepo.SumReturns(retCtx, f.StartDate, f.EndDate, f.OutletName)
	if err != nil {
		return nil, &domain.DataSourceError{Source: "returns", Err: err}
	}
	for _, q := range returns {
		k := pairKey{product: q.ProductName, outlet: q.OutletName}
		s := sums[k]
		s.returned += q.Quantity
		sums[k] = s
	}

	return sums, nil
}

func filterByProductName(items []entity.InventoryItem, contains string) []entity.InventoryItem {
	if contains == "" {
		return items
	}
	needle := strings.ToLower(contains)
	filtered := items[:0]
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.ProductName), needle) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// sumTotals folds the emitted rows only; skipped pairs never count.
func sumTotals(rows []Row) Totals {
	var t Totals
	for _, r := range rows {
		t.Opening += r.Opening
		t.StockIn += r.StockIn
		t.Returned += r.Returned
		t.Sold += r.Sold
		t.StockOut += r.StockOut
		t.Closing += r.Closing
	}
	return t
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
