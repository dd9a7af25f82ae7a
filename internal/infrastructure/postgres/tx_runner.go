package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/primabarber/barberstock-api/internal/application/stock"
	"github.com/primabarber/barberstock-api/internal/domain/repository"
)

// Ensure TxRunner implements stock.TxRunner.
var _ stock.TxRunner = (*TxRunner)(nil)

// TxRunner runs callbacks inside a PostgreSQL transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner over the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run begins a transaction, executes fn with repositories bound to that tx and
// commits, or rolls back when fn fails.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	invRepo repository.InventoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewMovementRepository(tx)
	invRepo := NewInventoryRepository(tx)

	if err := fn(movRepo, invRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
