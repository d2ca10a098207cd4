package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/supporthub/api/internal/service"
	"github.com/supporthub/api/pkg/util"
)

// CommunicationsHandler exposes communication CRUD endpoints.
type CommunicationsHandler struct {
	communications *service.CommunicationService
}

// NewCommunicationsHandler constructs handler.
func NewCommunicationsHandler(communications *service.CommunicationService) *CommunicationsHandler {
	return &CommunicationsHandler{communications: communications}
}

// Create handles POST /v1/api/communications/create_communication.
func (h *CommunicationsHandler) Create(c *fiber.Ctx) error {
	var input service.CommunicationCreateInput
	if err := c.BodyParser(&input); err != nil {
		return util.NewValidationError("Invalid request body")
	}
	comm, err := h.communications.Create(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(util.NewResponse(http.StatusCreated, comm, "Communication created"))
}

// List handles GET /v1/api/communications/get_communications.
func (h *CommunicationsHandler) List(c *fiber.Ctx) error {
	comms, err := h.communications.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, comms, "Communications retrieved successfully"))
}

// GetByID handles GET /v1/api/communications/get_communication_by_id/:id.
func (h *CommunicationsHandler) GetByID(c *fiber.Ctx) error {
	comm, err := h.communications.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, comm, "Communication retrieved successfully"))
}

// Update handles PUT /v1/api/communications/update_communication/:id.
func (h *CommunicationsHandler) Update(c *fiber.Ctx) error {
	var input service.CommunicationUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return util.NewValidationError("Invalid request body")
	}
	comm, err := h.communications.Update(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, comm, "Communication updated"))
}

// Delete handles DELETE /v1/api/communications/delete_communication/:id.
func (h *CommunicationsHandler) Delete(c *fiber.Ctx) error {
	comm, err := h.communications.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, comm, "Communication deleted"))
}
