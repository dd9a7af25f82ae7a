package stock

import (
	"context"

	"github.com/primabarber/barberstock-api/internal/domain/repository"
)

// TxRunner runs a function inside a database transaction, handing it
// repositories bound to that transaction. Guarantees atomicity for one
// movement line.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		invRepo repository.InventoryRepository,
	) error) error
}
