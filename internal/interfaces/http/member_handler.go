package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/primabarber/barberstock-api/internal/application/dto"
	"github.com/primabarber/barberstock-api/internal/application/usecase"
	"github.com/primabarber/barberstock-api/internal/domain"
)

// MemberHandler handles member requests (protected).
type MemberHandler struct {
	uc *usecase.MemberUseCase
}

// NewMemberHandler builds the handler.
func NewMemberHandler(uc *usecase.MemberUseCase) *MemberHandler {
	return &MemberHandler{uc: uc}
}

// Create godoc
// @Summary      Register member
// @Tags         members
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMemberRequest  true  "Member data"
// @Success      201   {object}  dto.MemberResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/members [post]
func (h *MemberHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMemberRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.Name == "" || in.Phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name and phone are required"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "phone already registered"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Get member by ID
// @Tags         members
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Member ID"
// @Success      200  {object}  dto.MemberResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/members/{id} [get]
func (h *MemberHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "member not found"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List members
// @Tags         members
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.MemberListResponse
// @Router       /api/members [get]
func (h *MemberHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update member
// @Tags         members
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Member ID"
// @Param        body  body  dto.UpdateMemberRequest  true  "Fields to update"
// @Success      200   {object}  dto.MemberResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/members/{id} [put]
func (h *MemberHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	var in dto.UpdateMemberRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "phone already registered"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "member not found"})
	}
	return c.JSON(out)
}
