package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/primabarber/barberstock-api/internal/application/dto"
	"github.com/primabarber/barberstock-api/internal/application/stock"
	"github.com/primabarber/barberstock-api/internal/domain"
	"github.com/primabarber/barberstock-api/internal/domain/repository"
)

// StockHandler handles stock movement requests (protected, admin/gudang for
// writes).
type StockHandler struct {
	submitUC *stock.SubmitMovementsUseCase
	movRepo  repository.MovementRepository
}

// NewStockHandler builds the handler.
func NewStockHandler(submitUC *stock.SubmitMovementsUseCase, movRepo repository.MovementRepository) *StockHandler {
	return &StockHandler{submitUC: submitUC, movRepo: movRepo}
}

// SubmitMovements godoc
// @Summary      Submit a batch of stock movements
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitMovementsRequest  true  "Movement batch"
// @Success      200   {object}  dto.SubmitMovementsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/movements [post]
func (h *StockHandler) SubmitMovements(c *fiber.Ctx) error {
	var in dto.SubmitMovementsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.submitUC.SubmitMovements(c.Context(), GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "outlet_id and at least one line are required"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListByProduct godoc
// @Summary      Movement history of a product
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "Product ID"
// @Param        limit   query  int     false  "Limit"   default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {array}  dto.MovementResponse
// @Router       /api/stock/movements/{id} [get]
func (h *StockHandler) ListByProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "product id is required"})
	}
	limit, offset := pageParams(c)
	movements, err := h.movRepo.ListByProduct(c.Context(), productID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.MovementResponse{
			ID:             m.ID,
			Date:           m.Date,
			OutletName:     m.OutletName,
			ProductName:    m.ProductName,
			Direction:      m.Direction,
			QuantityBefore: m.QuantityBefore,
			QuantityDelta:  m.QuantityDelta,
			QuantityAfter:  m.QuantityAfter,
			Note:           m.Note,
			CreatedAt:      m.CreatedAt,
		})
	}
	return c.JSON(out)
}
