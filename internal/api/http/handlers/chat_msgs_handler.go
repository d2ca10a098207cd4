package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/supporthub/api/internal/service"
	"github.com/supporthub/api/pkg/util"
)

// ChatMsgsHandler exposes chat message CRUD endpoints.
type ChatMsgsHandler struct {
	messages *service.ChatMessageService
}

// NewChatMsgsHandler constructs handler.
func NewChatMsgsHandler(messages *service.ChatMessageService) *ChatMsgsHandler {
	return &ChatMsgsHandler{messages: messages}
}

// Create handles POST /v1/api/chat_msgs/create_chat_msg.
func (h *ChatMsgsHandler) Create(c *fiber.Ctx) error {
	var input service.ChatMessageCreateInput
	if err := c.BodyParser(&input); err != nil {
		return util.NewValidationError("Invalid request body")
	}
	msg, err := h.messages.Create(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(util.NewResponse(http.StatusCreated, msg, "Chat message created"))
}

// List handles GET /v1/api/chat_msgs/get_chat_msgs.
func (h *ChatMsgsHandler) List(c *fiber.Ctx) error {
	msgs, err := h.messages.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, msgs, "Chat messages retrieved successfully"))
}

// GetByID handles GET /v1/api/chat_msgs/get_chat_msg_by_id/:id.
func (h *ChatMsgsHandler) GetByID(c *fiber.Ctx) error {
	msg, err := h.messages.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, msg, "Chat message retrieved successfully"))
}

// Update handles PUT /v1/api/chat_msgs/update_chat_msg/:id.
func (h *ChatMsgsHandler) Update(c *fiber.Ctx) error {
	var input service.ChatMessageUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return util.NewValidationError("Invalid request body")
	}
	msg, err := h.messages.Update(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, msg, "Chat message updated"))
}

// Delete handles DELETE /v1/api/chat_msgs/delete_chat_msg/:id.
func (h *ChatMsgsHandler) Delete(c *fiber.Ctx) error {
	msg, err := h.messages.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, msg, "Chat message deleted"))
}
