package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/primabarber/barberstock-api/internal/application/dto"
	"github.com/primabarber/barberstock-api/internal/application/usecase"
	"github.com/primabarber/barberstock-api/internal/domain"
)

// OutletHandler handles outlet requests (protected).
type OutletHandler struct {
	uc *usecase.OutletUseCase
}

// NewOutletHandler builds the handler.
func NewOutletHandler(uc *usecase.OutletUseCase) *OutletHandler {
	return &OutletHandler{uc: uc}
}

// Create godoc
// @Summary      Create outlet
// @Tags         outlets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOutletRequest  true  "Outlet data"
// @Success      201   {object}  dto.OutletResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/outlets [post]
func (h *OutletHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOutletRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name is required"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "outlet name already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Get outlet by ID
// @Tags         outlets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Outlet ID"
// @Success      200  {object}  dto.OutletResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/outlets/{id} [get]
func (h *OutletHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "outlet not found"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List outlets
// @Tags         outlets
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OutletListResponse
// @Router       /api/outlets [get]
func (h *OutletHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update outlet
// @Tags         outlets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Outlet ID"
// @Param        body  body  dto.UpdateOutletRequest  true  "Fields to update"
// @Success      200   {object}  dto.OutletResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/outlets/{id} [put]
func (h *OutletHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	var in dto.UpdateOutletRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "outlet name already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "outlet not found"})
	}
	return c.JSON(out)
}
