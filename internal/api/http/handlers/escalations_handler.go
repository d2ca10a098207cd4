package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/supporthub/api/internal/service"
	"github.com/supporthub/api/pkg/util"
)

// EscalationsHandler exposes escalation CRUD endpoints.
type EscalationsHandler struct {
	escalations *service.EscalationService
}

// NewEscalationsHandler constructs handler.
func NewEscalationsHandler(escalations *service.EscalationService) *EscalationsHandler {
	return &EscalationsHandler{escalations: escalations}
}

// Create handles POST /v1/api/escalations/create_escalation.
func (h *EscalationsHandler) Create(c *fiber.Ctx) error {
	var input service.EscalationCreateInput
	if err := c.BodyParser(&input); err != nil {
		return util.NewValidationError("Invalid request body")
	}
	escalation, err := h.escalations.Create(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(util.NewResponse(http.StatusCreated, escalation, "Escalation created"))
}

// List handles GET /v1/api/escalations/get_escalations.
func (h *EscalationsHandler) List(c *fiber.Ctx) error {
	escalations, err := h.escalations.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, escalations, "Escalations retrieved successfully"))
}

// GetByID handles GET /v1/api/escalations/get_escalation_by_id/:id.
func (h *EscalationsHandler) GetByID(c *fiber.Ctx) error {
	escalation, err := h.escalations.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, escalation, "Escalation retrieved successfully"))
}

// Update handles PUT /v1/api/escalations/update_escalation/:id.
func (h *EscalationsHandler) Update(c *fiber.Ctx) error {
	var input service.EscalationUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return util.NewValidationError("Invalid request body")
	}
	escalation, err := h.escalations.Update(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, escalation, "Escalation updated"))
}

// Delete handles DELETE /v1/api/escalations/delete_escalation/:id.
func (h *EscalationsHandler) Delete(c *fiber.Ctx) error {
	escalation, err := h.escalations.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, escalation, "Escalation deleted"))
}
