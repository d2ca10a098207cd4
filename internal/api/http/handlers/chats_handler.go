package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/supporthub/api/internal/service"
	"github.com/supporthub/api/pkg/util"
)

// ChatsHandler exposes chat CRUD endpoints.
type ChatsHandler struct {
	chats *service.ChatService
}

// NewChatsHandler constructs handler.
func NewChatsHandler(chats *service.ChatService) *ChatsHandler {
	return &ChatsHandler{chats: chats}
}

// Create handles POST /v1/api/chats/create_chat.
func (h *ChatsHandler) Create(c *fiber.Ctx) error {
	var input service.ChatCreateInput
	if err := c.BodyParser(&input); err != nil {
		return util.NewValidationError("Invalid request body")
	}
	chat, err := h.chats.Create(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(util.NewResponse(http.StatusCreated, chat, "Chat created"))
}

// List handles GET /v1/api/chats/get_chats.
func (h *ChatsHandler) List(c *fiber.Ctx) error {
	chats, err := h.chats.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, chats, "Chats retrieved successfully"))
}

// GetByID handles GET /v1/api/chats/get_chat_by_id/:id.
func (h *ChatsHandler) GetByID(c *fiber.Ctx) error {
	chat, err := h.chats.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, chat, "Chat retrieved successfully"))
}

// Update handles PUT /v1/api/chats/update_chat/:id.
func (h *ChatsHandler) Update(c *fiber.Ctx) error {
	var input service.ChatUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return util.NewValidationError("Invalid request body")
	}
	chat, err := h.chats.Update(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, chat, "Chat updated"))
}

// Delete handles DELETE /v1/api/chats/delete_chat/:id.
func (h *ChatsHandler) Delete(c *fiber.Ctx) error {
	chat, err := h.chats.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, chat, "Chat deleted"))
}
