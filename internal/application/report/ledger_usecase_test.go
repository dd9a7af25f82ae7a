package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primabarber/barberstock-api/internal/application/report"
	"github.com/primabarber/barberstock-api/internal/domain"
	"github.com/primabarber/barberstock-api/internal/domain/entity"
	"github.com/primabarber/barberstock-api/internal/domain/repository"
	"github.com/primabarber/barberstock-api/internal/domain/stockledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes for the three read collaborators
// ──────────────────────────────────────────────────────────────────────────────

type fakeInventoryRepo struct {
	items []entity.InventoryItem
	err   error
}

func (f *fakeInventoryRepo) ListCurrent(_ context.Context, outletName, categoryName string) ([]entity.InventoryItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.InventoryItem
	for _, it := range f.items {
		if !it.InventoryTracked {
			continue
		}
		if outletName != "" && it.OutletName != outletName {
			continue
		}
		if categoryName != "" && it.CategoryName != categoryName {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func (f *fakeInventoryRepo) Get(context.Context, string, string) (*entity.InventoryItem, error) {
	return nil, nil
}

func (f *fakeInventoryRepo) GetForUpdate(context.Context, string, string) (*entity.InventoryItem, error) {
	return nil, nil
}

func (f *fakeInventoryRepo) UpdateQuantity(context.Context, string, string, int64, string) error {
	return nil
}

type fakeMovementRepo struct {
	movements []entity.StockMovement
	err       error
}

func (f *fakeMovementRepo) Create(context.Context, *entity.StockMovement) error { return nil }

func (f *fakeMovementRepo) ListApprovedInWindow(_ context.Context, start, end time.Time, outletName string) ([]entity.StockMovement, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.StockMovement
	for _, m := range f.movements {
		if m.ApprovalStatus != entity.ApprovalApproved {
			continue
		}
		if m.Date.Before(start) || m.Date.After(end) {
			continue
		}
		if outletName != "" && m.OutletName != outletName {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMovementRepo) ListByProduct(context.Context, string, int, int) ([]entity.StockMovement, error) {
	return nil, nil
}

type fakeSalesRepo struct {
	sales      []repository.ProductOutletQuantity
	returns    []repository.ProductOutletQuantity
	salesErr   error
	returnsErr error
}

func (f *fakeSalesRepo) SumSales(context.Context, time.Time, time.Time, string) ([]repository.ProductOutletQuantity, error) {
	if f.salesErr != nil {
		return nil, f.salesErr
	}
	return f.sales, nil
}

func (f *fakeSalesRepo) SumReturns(context.Context, time.Time, time.Time, string) ([]repository.ProductOutletQuantity, error) {
	if f.returnsErr != nil {
		return nil, f.returnsErr
	}
	return f.returns, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var (
	windowStart = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	windowEnd   = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	midWindow   = time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
)

func trackedItem(product, category, outlet string, onHand int64) entity.InventoryItem {
	return entity.InventoryItem{
		ProductID:        product + "-id",
		ProductName:      product,
		CategoryName:     category,
		OutletID:         outlet + "-id",
		OutletName:       outlet,
		QuantityOnHand:   onHand,
		InventoryTracked: true,
	}
}

func approvedMovement(product, outlet, direction string, delta int64) entity.StockMovement {
	return entity.StockMovement{
		Date:           midWindow,
		OutletName:     outlet,
		ProductName:    product,
		Direction:      direction,
		QuantityDelta:  delta,
		ApprovalStatus: entity.ApprovalApproved,
	}
}

func buildUseCase(inv *fakeInventoryRepo, mov *fakeMovementRepo, sales *fakeSalesRepo) *report.LedgerUseCase {
	return report.NewLedgerUseCase(inv, mov, sales)
}

func defaultFilter() report.Filter {
	return report.Filter{StartDate: windowStart, EndDate: windowEnd}
}

// ──────────────────────────────────────────────────────────────────────────────
// Reconciliation arithmetic
// ──────────────────────────────────────────────────────────────────────────────

// Product P at outlet A: onHand=50, in=20, out=5, sold=30, returned=0.
// Opening must be 65 and closing must land back on 50, confirming that closing
// reconstructs the current on-hand when the window end equals "now".
func TestBuildReport_OpeningReconstructedFromOnHand(t *testing.T) {
	inv := &fakeInventoryRepo{items: []entity.InventoryItem{
		trackedItem("Pomade Heavy", "Styling", "Outlet Kemang", 50),
	}}
	mov := &fakeMovementRepo{movements: []entity.StockMovement{
		approvedMovement("Pomade Heavy", "Outlet Kemang", entity.DirectionIn, 20),
		approvedMovement("Pomade Heavy", "Outlet Kemang", entity.DirectionOut, -5),
	}}
	sales := &fakeSalesRepo{sales: []repository.ProductOutletQuantity{
		{ProductName: "Pomade Heavy", OutletName: "Outlet Kemang", Quantity: 30},
	}}

	rep, err := buildUseCase(inv, mov, sales).BuildReport(context.Background(), defaultFilter())
	require.NoError(t, err)
	require.Len(t, rep.Rows, 1)

	row := rep.Rows[0]
	assert.Equal(t, int64(65), row.Opening)
	assert.Equal(t, int64(20), row.StockIn)
	assert.Equal(t, int64(5), row.StockOut)
	assert.Equal(t, int64(30), row.Sold)
	assert.Equal(t, int64(0), row.Returned)
	assert.Equal(t, int64(50), row.Closing)
}

// OUT movements are stored with a negative delta; the magnitude drives the sum.
func TestBuildReport_MagnitudeDrivesOutSum(t *testing.T) {
	inv := &fakeInventoryRepo{items: []entity.InventoryItem{
		trackedItem("Razor Blades", "Tools", "Outlet Kemang", 40),
	}}
	mov := &fakeMovementRepo{movements: []entity.StockMovement{
		approvedMovement("Razor Blades", "Outlet Kemang", entity.DirectionOut, -12),
	}}

	rep, err := buildUseCase(inv, mov, &fakeSalesRepo{}).BuildReport(context.Background(), defaultFilter())
	require.NoError(t, err)
	require.Len(t, rep.Rows, 1)
	assert.Equal(t, int64(12), rep.Rows[0].StockOut)
}

// Contrived inputs where the raw opening arithmetic goes negative: the reported
// opening is clamped to 0 and closing is computed from the clamped value.
func TestBuildReport_NegativeOpeningClamped(t *testing.T) {
	// onHand=0, in=5 -> raw opening = 0 + 0 + 0 - 5 - 0 = -5
	inv := &fakeInventoryRepo{items: []entity.InventoryItem{
		trackedItem("Hair Tonic", "Care", "Outlet Kemang", 0),
	}}
	mov := &fakeMovementRepo{movements: []entity.StockMovement{
		approvedMovement("Hair Tonic", "Outlet Kemang", entity.DirectionIn, 5),
	}}

	rep, err := buildUseCase(inv, mov, &fakeSalesRepo{}).BuildReport(context.Background(), defaultFilter())
	require.NoError(t, err)
	require.Len(t, rep.Rows, 1)
	assert.Equal(t, int64(0), rep.Rows[0].Opening)
	// closing from clamped 0, not from -5
	assert.Equal(t, int64(5), rep.Rows[0].Closing)
}

// Every emitted row must satisfy the closing invariant.
func TestBuildReport_ClosingInvariantHolds(t *testing.T) {
	inv := &fakeInventoryRepo{items: []entity.InventoryItem{
		trackedItem("Pomade Heavy", "Styling", "Outlet Kemang", 50),
		trackedItem("Shampoo", "Care", "Outlet Tebet", 3),
	}}
	mov := &fakeMovementRepo{movements: []entity.StockMovement{
		approvedMovement("Pomade Heavy", "Outlet Kemang", entity.DirectionIn, 20),
		approvedMovement("Shampoo", "Outlet Tebet", entity.DirectionOut, -8),
	}}
	sales := &fakeSalesRepo{
		sales:   []repository.ProductOutletQuantity{{ProductName: "Pomade Heavy", OutletName: "Outlet Kemang", Quantity: 30}},
		returns: []repository.ProductOutletQuantity{{ProductName: "Shampoo", OutletName: "Outlet Tebet", Quantity: 2}},
	}

	rep, err := buildUseCase(inv, mov, sales).BuildReport(context.Background(), defaultFilter())
	require.NoError(t, err)
	require.NotEmpty(t, rep.Rows)

	for _, row := range rep.Rows {
		want := stockledger.Closing(row.Opening, row.StockIn, row.StockOut, row.Sold, row.Returned)
		assert.Equal(t, want, row.Closing, "row %s/%s", row.ProductName, row.OutletName)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtering
// ──────────────────────────────────────────────────────────────────────────────

// A pair with all four sums zero is excluded, even though it is in stock.
func TestBuildReport_ZeroActivityRowOmitted(t *testing.T) {
	inv := &fakeInventoryRepo{items: []entity.InventoryItem{
		trackedItem("Quiet Product", "Care", "Outlet Kemang", 99),
		trackedItem("Busy Product", "Care", "Outlet Kemang", 10),
	}}
	mov := &fakeMovementRepo{movements: []entity.StockMovement{
		approvedMovement("Busy Product", "Outlet Kemang", entity.DirectionIn, 4),
	}}

	rep, err := buildUseCase(inv, mov, &fakeSalesRepo{}).BuildReport(context.Background(), defaultFilter())
	require.NoError(t, err)
	require.Len(t, rep.Rows, 1)
	assert.Equal(t, "Busy Product", rep.Rows[0].ProductName)
}

// A product with InventoryTracked=false never appears, regardless of movement
// history referencing it.
func TestBuildReport_UntrackedProductNeverEmitted(t *testing.T) {
	untracked := trackedItem("Service Voucher", "Services", "Outlet Kemang", 0)
	untracked.InventoryTracked = false

	inv := &fakeInventoryRepo{items: []entity.InventoryItem{untracked}}
	mov := &fakeMovementRepo{movements: []entity.StockMovement{
		approvedMovement("Service Voucher", "Outlet Kemang", entity.DirectionIn, 100),
	}}

	rep, err := buildUseCase(inv, mov, &fakeSalesRepo{}).BuildReport(context.Background(), defaultFilter())
	require.NoError(t, err)
	assert.Empty(t, rep.Rows)
}

// Pending movements never participate: no partial credit.
func TestBuildReport_PendingMovementsExcluded(t *testing.T) {
	inv := &fakeInventoryRepo{items: []entity.InventoryItem{
		trackedItem("Pomade Heavy", "Styling", "Outlet Kemang", 50),
	}}
	pending := approvedMovement("Pomade Heavy", "Outlet Kemang", entity.DirectionIn, 20)
	pending.ApprovalStatus = entity.ApprovalPending
	mov := &fakeMovementRepo{movements: []entity.StockMovement{pending}}

	rep, err := buildUseCase(inv, mov, &fakeSalesRepo{}).BuildReport(context.Background(), defaultFilter())
	require.NoError(t, err)
	assert.Empty(t, rep.Rows)
}

// The product-name filter is a case-insensitive substring applied after the
// inventory query.
func TestBuildReport_ProductNameContainsFilter(t *testing.T) {
	inv := &fakeInventoryRepo{items: []entity.InventoryItem{
		trackedItem("Pomade Heavy", "Styling", "Outlet Kemang", 50),
		trackedItem("Hair Tonic", "Care", "Outlet Kemang", 30),
	}}
	mov := &fakeMovementRepo{movements: []entity.StockMovement{
		approvedMovement("Pomade Heavy", "Outlet Kemang", entity.DirectionIn, 5),
		approvedMovement("Hair Tonic", "Outlet Kemang", entity.DirectionIn, 5),
	}}

	f := defaultFilter()
	f.ProductNameContains = "pOmAdE"
	rep, err := buildUseCase(inv, mov, &fakeSalesRepo{}).BuildReport(context.Background(), f)
	require.NoError(t, err)
	require.Len(t, rep.Rows, 1)
	assert.Equal(t, "Pomade Heavy", rep.Rows[0].ProductName)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ordering, totals, status
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildReport_RowsSortedByCategoryThenProduct(t *testing.T) {
	inv := &fakeInventoryRepo{items: []entity.InventoryItem{
		trackedItem("Zeta Wax", "Styling", "Outlet Kemang", 20),
		trackedItem("Alpha Gel", "Styling", "Outlet Kemang", 20),
		trackedItem("Beard Oil", "Care", "Outlet Kemang", 20),
	}}
	mov := &fakeMovementRepo{movements: []entity.StockMovement{
		approvedMovement("Zeta Wax", "Outlet Kemang", entity.DirectionIn, 1),
		approvedMovement("Alpha Gel", "Outlet Kemang", entity.DirectionIn, 1),
		approvedMovement("Beard Oil", "Outlet Kemang", entity.DirectionIn, 1),
	}}

	rep, err := buildUseCase(inv, mov, &fakeSalesRepo{}).BuildReport(context.Background(), defaultFilter())
	require.NoError(t, err)
	require.Len(t, rep.Rows, 3)
	assert.Equal(t, "Beard Oil", rep.Rows[0].ProductName)
	assert.Equal(t, "Alpha Gel", rep.Rows[1].ProductName)
	assert.Equal(t, "Zeta Wax", rep.Rows[2].ProductName)
}

// Totals are column-wise sums of the emitted rows only.
func TestBuildReport_TotalsMatchEmittedRows(t *testing.T) {
	inv := &fakeInventoryRepo{items: []entity.InventoryItem{
		trackedItem("Pomade Heavy", "Styling", "Outlet Kemang", 50),
		trackedItem("Hair Tonic", "Care", "Outlet Tebet", 30),
		trackedItem("Idle Product", "Care", "Outlet Tebet", 7), // no activity
	}}
	mov := &fakeMovementRepo{movements: []entity.StockMovement{
		approvedMovement("Pomade Heavy", "Outlet Kemang", entity.DirectionIn, 20),
		approvedMovement("Hair Tonic", "Outlet Tebet", entity.DirectionOut, -10),
	}}
	sales := &fakeSalesRepo{sales: []repository.ProductOutletQuantity{
		{ProductName: "Pomade Heavy", OutletName: "Outlet Kemang", Quantity: 30},
	}}

	rep, err := buildUseCase(inv, mov, sales).BuildReport(context.Background(), defaultFilter())
	require.NoError(t, err)
	require.Len(t, rep.Rows, 2)

	var want report.Totals
	for _, row := range rep.Rows {
		want.Opening += row.Opening
		want.StockIn += row.StockIn
		want.Returned += row.Returned
		want.Sold += row.Sold
		want.StockOut += row.StockOut
		want.Closing += row.Closing
	}
	assert.Equal(t, want, rep.Totals)
}

func TestBuildReport_StatusClassification(t *testing.T) {
	inv := &fakeInventoryRepo{items: []entity.InventoryItem{
		trackedItem("Out Product", "Care", "Outlet Kemang", 0),
		trackedItem("Low Product", "Care", "Outlet Kemang", 8),
		trackedItem("Normal Product", "Care", "Outlet Kemang", 90),
	}}
	mov := &fakeMovementRepo{movements: []entity.StockMovement{
		approvedMovement("Out Product", "Outlet Kemang", entity.DirectionOut, -3),
		approvedMovement("Low Product", "Outlet Kemang", entity.DirectionIn, 2),
		approvedMovement("Normal Product", "Outlet Kemang", entity.DirectionIn, 10),
	}}

	rep, err := buildUseCase(inv, mov, &fakeSalesRepo{}).BuildReport(context.Background(), defaultFilter())
	require.NoError(t, err)
	require.Len(t, rep.Rows, 3)

	byName := map[string]report.Row{}
	for _, row := range rep.Rows {
		byName[row.ProductName] = row
	}
	assert.Equal(t, stockledger.StatusOutOfStock, byName["Out Product"].Status)
	assert.Equal(t, stockledger.StatusLowStock, byName["Low Product"].Status)
	assert.Equal(t, stockledger.StatusNormal, byName["Normal Product"].Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Failure handling
// ──────────────────────────────────────────────────────────────────────────────

// Any failing fetch aborts the whole computation with a DataSourceError; no
// partial row list is ever returned.
func TestBuildReport_FetchFailureAbortsWhole(t *testing.T) {
	boom := errors.New("connection reset")
	items := []entity.InventoryItem{trackedItem("Pomade Heavy", "Styling", "Outlet Kemang", 50)}
	movs := []entity.StockMovement{approvedMovement("Pomade Heavy", "Outlet Kemang", entity.DirectionIn, 5)}

	cases := []struct {
		name  string
		inv   *fakeInventoryRepo
		mov   *fakeMovementRepo
		sales *fakeSalesRepo
	}{
		{"inventory", &fakeInventoryRepo{err: boom}, &fakeMovementRepo{movements: movs}, &fakeSalesRepo{}},
		{"movements", &fakeInventoryRepo{items: items}, &fakeMovementRepo{err: boom}, &fakeSalesRepo{}},
		{"sales", &fakeInventoryRepo{items: items}, &fakeMovementRepo{movements: movs}, &fakeSalesRepo{salesErr: boom}},
		{"returns", &fakeInventoryRepo{items: items}, &fakeMovementRepo{movements: movs}, &fakeSalesRepo{returnsErr: boom}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rep, err := buildUseCase(tc.inv, tc.mov, tc.sales).BuildReport(context.Background(), defaultFilter())
			require.Error(t, err)
			assert.True(t, domain.IsDataSourceError(err), "expected DataSourceError, got %v", err)
			assert.Nil(t, rep, "no partial report on fetch failure")

			var dse *domain.DataSourceError
			require.ErrorAs(t, err, &dse)
			assert.Equal(t, tc.name, dse.Source)
		})
	}
}

func TestBuildReport_InvertedDateRangeRejected(t *testing.T) {
	f := report.Filter{StartDate: windowEnd, EndDate: windowStart}
	_, err := buildUseCase(&fakeInventoryRepo{}, &fakeMovementRepo{}, &fakeSalesRepo{}).
		BuildReport(context.Background(), f)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBuildReport_MissingDatesRejected(t *testing.T) {
	_, err := buildUseCase(&fakeInventoryRepo{}, &fakeMovementRepo{}, &fakeSalesRepo{}).
		BuildReport(context.Background(), report.Filter{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
