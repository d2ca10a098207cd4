package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/supporthub/api/internal/service"
	"github.com/supporthub/api/pkg/util"
)

// TicketsHandler exposes ticket CRUD endpoints.
type TicketsHandler struct {
	tickets *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(tickets *service.TicketService) *TicketsHandler {
	return &TicketsHandler{tickets: tickets}
}

// Create handles POST /v1/api/tickets/create_ticket.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	var input service.TicketCreateInput
	if err := c.BodyParser(&input); err != nil {
		return util.NewValidationError("Invalid request body")
	}
	ticket, err := h.tickets.Create(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(util.NewResponse(http.StatusCreated, ticket, "Ticket created"))
}

// List handles GET /v1/api/tickets/get_tickets.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	tickets, err := h.tickets.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, tickets, "Tickets retrieved successfully"))
}

// GetByID handles GET /v1/api/tickets/get_ticket_by_id/:id.
func (h *TicketsHandler) GetByID(c *fiber.Ctx) error {
	ticket, err := h.tickets.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, ticket, "Ticket retrieved successfully"))
}

// Update handles PUT /v1/api/tickets/update_ticket/:id.
func (h *TicketsHandler) Update(c *fiber.Ctx) error {
	var input service.TicketUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return util.NewValidationError("Invalid request body")
	}
	ticket, err := h.tickets.Update(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, ticket, "Ticket updated"))
}

// Delete handles DELETE /v1/api/tickets/delete_ticket/:id.
func (h *TicketsHandler) Delete(c *fiber.Ctx) error {
	ticket, err := h.tickets.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, ticket, "Ticket deleted"))
}
