package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/supporthub/api/internal/service"
	"github.com/supporthub/api/pkg/util"
)

// UsersHandler exposes user CRUD endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users *service.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// Create handles POST /v1/api/users/create_user.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var input service.UserCreateInput
	if err := c.BodyParser(&input); err != nil {
		return util.NewValidationError("Invalid request body")
	}
	user, err := h.users.Create(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(util.NewResponse(http.StatusCreated, user, "User created"))
}

// List handles GET /v1/api/users/get_users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, users, "Users retrieved successfully"))
}

// GetByID handles GET /v1/api/users/get_user_by_id/:id.
func (h *UsersHandler) GetByID(c *fiber.Ctx) error {
	user, err := h.users.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, user, "User retrieved successfully"))
}

// Update handles PUT /v1/api/users/update_user/:id.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	var input service.UserUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return util.NewValidationError("Invalid request body")
	}
	user, err := h.users.Update(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, user, "User updated"))
}

// Delete handles DELETE /v1/api/users/delete_user/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	user, err := h.users.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, user, "User deleted"))
}
