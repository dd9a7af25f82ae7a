package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primabarber/barberstock-api/internal/application/dto"
	"github.com/primabarber/barberstock-api/internal/application/stock"
	"github.com/primabarber/barberstock-api/internal/domain"
	"github.com/primabarber/barberstock-api/internal/domain/entity"
	"github.com/primabarber/barberstock-api/internal/domain/repository"
)

// memStore is shared in-memory state standing in for the database.
type memStore struct {
	items     map[string]*entity.InventoryItem // key: productID|outletID
	movements []entity.StockMovement
}

func key(productID, outletID string) string { return productID + "|" + outletID }

type memMovementRepo struct{ store *memStore }

func (r *memMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	r.store.movements = append(r.store.movements, *m)
	return nil
}

func (r *memMovementRepo) ListApprovedInWindow(context.Context, time.Time, time.Time, string) ([]entity.StockMovement, error) {
	return nil, nil
}

func (r *memMovementRepo) ListByProduct(context.Context, string, int, int) ([]entity.StockMovement, error) {
	return nil, nil
}

type memInventoryRepo struct{ store *memStore }

func (r *memInventoryRepo) ListCurrent(context.Context, string, string) ([]entity.InventoryItem, error) {
	return nil, nil
}

func (r *memInventoryRepo) Get(_ context.Context, productID, outletID string) (*entity.InventoryItem, error) {
	return r.GetForUpdate(context.Background(), productID, outletID)
}

func (r *memInventoryRepo) GetForUpdate(_ context.Context, productID, outletID string) (*entity.InventoryItem, error) {
	item, ok := r.store.items[key(productID, outletID)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *item
	return &cp, nil
}

func (r *memInventoryRepo) UpdateQuantity(_ context.Context, productID, outletID string, quantity int64, updatedBy string) error {
	item, ok := r.store.items[key(productID, outletID)]
	if !ok {
		return domain.ErrNotFound
	}
	item.QuantityOnHand = quantity
	item.UpdatedBy = updatedBy
	return nil
}

// memTxRunner replays the write callback against the shared store. txCount
// tracks how many transactions were opened: one per line.
type memTxRunner struct {
	store   *memStore
	txCount int
}

func (r *memTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	invRepo repository.InventoryRepository,
) error) error {
	r.txCount++
	return fn(&memMovementRepo{store: r.store}, &memInventoryRepo{store: r.store})
}

func newStore(items ...entity.InventoryItem) *memStore {
	s := &memStore{items: map[string]*entity.InventoryItem{}}
	for i := range items {
		item := items[i]
		s.items[key(item.ProductID, item.OutletID)] = &item
	}
	return s
}

func pomadeItem(onHand int64) entity.InventoryItem {
	return entity.InventoryItem{
		ProductID:        "prod-1",
		ProductName:      "Pomade Heavy",
		CategoryName:     "Styling",
		OutletID:         "outlet-1",
		OutletName:       "Outlet Kemang",
		QuantityOnHand:   onHand,
		InventoryTracked: true,
	}
}

func TestSubmitMovements_InAdjustsSnapshotAndRecordsMovement(t *testing.T) {
	store := newStore(pomadeItem(10))
	runner := &memTxRunner{store: store}
	uc := stock.NewSubmitMovementsUseCase(runner)

	resp, err := uc.SubmitMovements(context.Background(), "user-1", dto.SubmitMovementsRequest{
		OutletID: "outlet-1",
		Lines: []dto.MovementLineRequest{
			{ProductID: "prod-1", Direction: entity.DirectionIn, Quantity: 5, Note: "restock"},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)

	res := resp.Results[0]
	assert.True(t, res.Accepted)
	assert.Equal(t, int64(10), res.QuantityBefore)
	assert.Equal(t, int64(15), res.QuantityAfter)
	assert.NotEmpty(t, res.MovementID)

	require.Len(t, store.movements, 1)
	mov := store.movements[0]
	assert.Equal(t, entity.DirectionIn, mov.Direction)
	assert.Equal(t, int64(5), mov.QuantityDelta)
	assert.Equal(t, entity.ApprovalApproved, mov.ApprovalStatus)
	assert.Equal(t, "Pomade Heavy", mov.ProductName)
	assert.Equal(t, "user-1", mov.CreatedBy)

	assert.Equal(t, int64(15), store.items[key("prod-1", "outlet-1")].QuantityOnHand)
	assert.Equal(t, "user-1", store.items[key("prod-1", "outlet-1")].UpdatedBy)
}

func TestSubmitMovements_OutStoresNegativeDelta(t *testing.T) {
	store := newStore(pomadeItem(10))
	uc := stock.NewSubmitMovementsUseCase(&memTxRunner{store: store})

	resp, err := uc.SubmitMovements(context.Background(), "user-1", dto.SubmitMovementsRequest{
		OutletID: "outlet-1",
		Lines: []dto.MovementLineRequest{
			{ProductID: "prod-1", Direction: entity.DirectionOut, Quantity: 4},
		},
	})
	require.NoError(t, err)
	require.True(t, resp.Results[0].Accepted)

	require.Len(t, store.movements, 1)
	assert.Equal(t, int64(-4), store.movements[0].QuantityDelta)
	assert.Equal(t, int64(6), store.movements[0].QuantityAfter)
	assert.Equal(t, int64(6), store.items[key("prod-1", "outlet-1")].QuantityOnHand)
}

// An OUT larger than on-hand is rejected with INSUFFICIENT_STOCK, and the other
// lines of the batch still go through.
func TestSubmitMovements_InsufficientStockRejectsLineOnly(t *testing.T) {
	razor := entity.InventoryItem{
		ProductID: "prod-2", ProductName: "Razor Blades", CategoryName: "Tools",
		OutletID: "outlet-1", OutletName: "Outlet Kemang",
		QuantityOnHand: 100, InventoryTracked: true,
	}
	store := newStore(pomadeItem(3), razor)
	runner := &memTxRunner{store: store}
	uc := stock.NewSubmitMovementsUseCase(runner)

	resp, err := uc.SubmitMovements(context.Background(), "user-1", dto.SubmitMovementsRequest{
		OutletID: "outlet-1",
		Lines: []dto.MovementLineRequest{
			{ProductID: "prod-1", Direction: entity.DirectionOut, Quantity: 50},
			{ProductID: "prod-2", Direction: entity.DirectionOut, Quantity: 10},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Results, 2)

	assert.False(t, resp.Results[0].Accepted)
	assert.Equal(t, "INSUFFICIENT_STOCK", resp.Results[0].Error)
	assert.True(t, resp.Results[1].Accepted)

	// Rejected line left its snapshot untouched.
	assert.Equal(t, int64(3), store.items[key("prod-1", "outlet-1")].QuantityOnHand)
	assert.Equal(t, int64(90), store.items[key("prod-2", "outlet-1")].QuantityOnHand)
	require.Len(t, store.movements, 1)
	assert.Equal(t, "Razor Blades", store.movements[0].ProductName)
}

func TestSubmitMovements_OneTransactionPerLine(t *testing.T) {
	store := newStore(pomadeItem(50))
	runner := &memTxRunner{store: store}
	uc := stock.NewSubmitMovementsUseCase(runner)

	_, err := uc.SubmitMovements(context.Background(), "user-1", dto.SubmitMovementsRequest{
		OutletID: "outlet-1",
		Lines: []dto.MovementLineRequest{
			{ProductID: "prod-1", Direction: entity.DirectionIn, Quantity: 1},
			{ProductID: "prod-1", Direction: entity.DirectionIn, Quantity: 2},
			{ProductID: "prod-1", Direction: entity.DirectionOut, Quantity: 3},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, runner.txCount)
	assert.Equal(t, int64(50), store.items[key("prod-1", "outlet-1")].QuantityOnHand)
}

func TestSubmitMovements_UnknownProductRejected(t *testing.T) {
	store := newStore(pomadeItem(10))
	uc := stock.NewSubmitMovementsUseCase(&memTxRunner{store: store})

	resp, err := uc.SubmitMovements(context.Background(), "user-1", dto.SubmitMovementsRequest{
		OutletID: "outlet-1",
		Lines: []dto.MovementLineRequest{
			{ProductID: "prod-missing", Direction: entity.DirectionIn, Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.False(t, resp.Results[0].Accepted)
	assert.Equal(t, "PRODUCT_NOT_FOUND", resp.Results[0].Error)
}

func TestSubmitMovements_UntrackedProductRejected(t *testing.T) {
	voucher := pomadeItem(0)
	voucher.ProductID = "prod-3"
	voucher.ProductName = "Service Voucher"
	voucher.InventoryTracked = false
	store := newStore(voucher)
	uc := stock.NewSubmitMovementsUseCase(&memTxRunner{store: store})

	resp, err := uc.SubmitMovements(context.Background(), "user-1", dto.SubmitMovementsRequest{
		OutletID: "outlet-1",
		Lines: []dto.MovementLineRequest{
			{ProductID: "prod-3", Direction: entity.DirectionIn, Quantity: 5},
		},
	})
	require.NoError(t, err)
	assert.False(t, resp.Results[0].Accepted)
	assert.Equal(t, "INVALID_LINE", resp.Results[0].Error)
}

func TestSubmitMovements_InvalidLinesRejectedBeforeTx(t *testing.T) {
	store := newStore(pomadeItem(10))
	runner := &memTxRunner{store: store}
	uc := stock.NewSubmitMovementsUseCase(runner)

	resp, err := uc.SubmitMovements(context.Background(), "user-1", dto.SubmitMovementsRequest{
		OutletID: "outlet-1",
		Lines: []dto.MovementLineRequest{
			{ProductID: "prod-1", Direction: "SIDEWAYS", Quantity: 1},
			{ProductID: "prod-1", Direction: entity.DirectionIn, Quantity: 0},
			{ProductID: "", Direction: entity.DirectionIn, Quantity: 1},
		},
	})
	require.NoError(t, err)
	for _, res := range resp.Results {
		assert.False(t, res.Accepted)
		assert.Equal(t, "INVALID_LINE", res.Error)
	}
	assert.Zero(t, runner.txCount)
}

func TestSubmitMovements_EmptyBatchRejected(t *testing.T) {
	uc := stock.NewSubmitMovementsUseCase(&memTxRunner{store: newStore()})

	_, err := uc.SubmitMovements(context.Background(), "user-1", dto.SubmitMovementsRequest{OutletID: "outlet-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.SubmitMovements(context.Background(), "user-1", dto.SubmitMovementsRequest{
		Lines: []dto.MovementLineRequest{{ProductID: "prod-1", Direction: entity.DirectionIn, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
