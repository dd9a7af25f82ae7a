package stock

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/primabarber/barberstock-api/internal/application/dto"
	"github.com/primabarber/barberstock-api/internal/domain"
	"github.com/primabarber/barberstock-api/internal/domain/entity"
	"github.com/primabarber/barberstock-api/internal/domain/repository"
)

// SubmitMovementsUseCase records batches of stock adjustments. Each line runs
// in its own transaction with a row lock (SELECT FOR UPDATE) on the inventory
// snapshot, so concurrent submissions against the same product cannot lose
// updates. A rejected line never aborts its siblings.
type SubmitMovementsUseCase struct {
	txRunner TxRunner
}

// NewSubmitMovementsUseCase builds the use case.
func NewSubmitMovementsUseCase(txRunner TxRunner) *SubmitMovementsUseCase {
	return &SubmitMovementsUseCase{txRunner: txRunner}
}

// SubmitMovements processes the batch in order. userID is the authenticated
// employee recorded as the writer on both the movement and the snapshot.
func (uc *SubmitMovementsUseCase) SubmitMovements(
	ctx context.Context,
	userID string,
	req dto.SubmitMovementsRequest,
) (*dto.SubmitMovementsResponse, error) {
	if req.OutletID == "" || len(req.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	results := make([]dto.MovementLineResult, 0, len(req.Lines))
	for _, line := range req.Lines {
		results = append(results, uc.submitLine(ctx, userID, req.OutletID, date, line))
	}
	return &dto.SubmitMovementsResponse{Results: results}, nil
}

// submitLine validates and applies a single adjustment inside its own
// transaction. Errors are folded into the per-line result.
func (uc *SubmitMovementsUseCase) submitLine(
	ctx context.Context,
	userID, outletID string,
	date time.Time,
	line dto.MovementLineRequest,
) dto.MovementLineResult {
	result := dto.MovementLineResult{ProductID: line.ProductID}

	if err := validateLine(line); err != nil {
		result.Error = errorLabel(err)
		return result
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		invRepo repository.InventoryRepository,
	) error {
		// Row lock on the snapshot; held until this line commits.
		item, err := invRepo.GetForUpdate(ctx, line.ProductID, outletID)
		if err != nil {
			return err
		}
		if !item.InventoryTracked {
			return domain.ErrInvalidInput
		}

		delta := line.Quantity
		if line.Direction == entity.DirectionOut {
			if item.QuantityOnHand < line.Quantity {
				return domain.ErrInsufficientStock
			}
			delta = -line.Quantity
		}

		mov := &entity.StockMovement{
			ID:             uuid.New().String(),
			Date:           date,
			OutletID:       outletID,
			OutletName:     item.OutletName,
			ProductID:      line.ProductID,
			ProductName:    item.ProductName,
			CategoryName:   item.CategoryName,
			Direction:      line.Direction,
			QuantityBefore: item.QuantityOnHand,
			QuantityDelta:  delta,
			QuantityAfter:  item.QuantityOnHand + delta,
			ApprovalStatus: entity.ApprovalApproved,
			Note:           line.Note,
			CreatedAt:      time.Now(),
			CreatedBy:      userID,
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		if err := invRepo.UpdateQuantity(ctx, line.ProductID, outletID, mov.QuantityAfter, userID); err != nil {
			return err
		}

		result.Accepted = true
		result.MovementID = mov.ID
		result.QuantityBefore = mov.QuantityBefore
		result.QuantityAfter = mov.QuantityAfter
		return nil
	})
	if err != nil {
		result.Accepted = false
		result.Error = errorLabel(err)
	}
	return result
}

func validateLine(line dto.MovementLineRequest) error {
	if line.ProductID == "" || line.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	if line.Direction != entity.DirectionIn && line.Direction != entity.DirectionOut {
		return domain.ErrInvalidInput
	}
	return nil
}

// errorLabel maps line errors to stable machine-readable labels.
func errorLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return "INSUFFICIENT_STOCK"
	case errors.Is(err, domain.ErrNotFound):
		return "PRODUCT_NOT_FOUND"
	case errors.Is(err, domain.ErrInvalidInput):
		return "INVALID_LINE"
	default:
		return "INTERNAL"
	}
}
