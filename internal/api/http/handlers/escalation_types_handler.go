package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/supporthub/api/internal/service"
	"github.com/supporthub/api/pkg/util"
)

// EscalationTypesHandler exposes escalation type CRUD endpoints.
type EscalationTypesHandler struct {
	types *service.EscalationTypeService
}

// NewEscalationTypesHandler constructs handler.
func NewEscalationTypesHandler(types *service.EscalationTypeService) *EscalationTypesHandler {
	return &EscalationTypesHandler{types: types}
}

// Create handles POST /v1/api/escalation_types/create_escalation_type.
func (h *EscalationTypesHandler) Create(c *fiber.Ctx) error {
	var input service.EscalationTypeCreateInput
	if err := c.BodyParser(&input); err != nil {
		return util.NewValidationError("Invalid request body")
	}
	escType, err := h.types.Create(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(util.NewResponse(http.StatusCreated, escType, "Escalation type created"))
}

// List handles GET /v1/api/escalation_types/get_escalation_types.
func (h *EscalationTypesHandler) List(c *fiber.Ctx) error {
	escTypes, err := h.types.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, escTypes, "Escalation types retrieved successfully"))
}

// GetByID handles GET /v1/api/escalation_types/get_escalation_type_by_id/:id.
func (h *EscalationTypesHandler) GetByID(c *fiber.Ctx) error {
	escType, err := h.types.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, escType, "Escalation type retrieved successfully"))
}

// Update handles PUT /v1/api/escalation_types/update_escalation_type/:id.
func (h *EscalationTypesHandler) Update(c *fiber.Ctx) error {
	var input service.EscalationTypeUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return util.NewValidationError("Invalid request body")
	}
	escType, err := h.types.Update(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, escType, "Escalation type updated"))
}

// Delete handles DELETE /v1/api/escalation_types/delete_escalation_type/:id.
func (h *EscalationTypesHandler) Delete(c *fiber.Ctx) error {
	escType, err := h.types.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, escType, "Escalation type deleted"))
}
