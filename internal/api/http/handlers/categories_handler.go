package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/supporthub/api/internal/service"
	"github.com/supporthub/api/pkg/util"
)

// CategoriesHandler exposes category CRUD endpoints.
type CategoriesHandler struct {
	categories *service.CategoryService
}

// NewCategoriesHandler constructs handler.
func NewCategoriesHandler(categories *service.CategoryService) *CategoriesHandler {
	return &CategoriesHandler{categories: categories}
}

// Create handles POST /v1/api/categories/create_category.
func (h *CategoriesHandler) Create(c *fiber.Ctx) error {
	var input service.CategoryCreateInput
	if err := c.BodyParser(&input); err != nil {
		return util.NewValidationError("Invalid request body")
	}
	category, err := h.categories.Create(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(util.NewResponse(http.StatusCreated, category, "Category created"))
}

// List handles GET /v1/api/categories/get_categories.
func (h *CategoriesHandler) List(c *fiber.Ctx) error {
	categories, err := h.categories.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, categories, "Categories retrieved successfully"))
}

// GetByID handles GET /v1/api/categories/get_category_by_id/:id.
func (h *CategoriesHandler) GetByID(c *fiber.Ctx) error {
	category, err := h.categories.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, category, "Category retrieved successfully"))
}

// Update handles PUT /v1/api/categories/update_category/:id.
func (h *CategoriesHandler) Update(c *fiber.Ctx) error {
	var input service.CategoryUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return util.NewValidationError("Invalid request body")
	}
	category, err := h.categories.Update(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, category, "Category updated"))
}

// Delete handles DELETE /v1/api/categories/delete_category/:id.
func (h *CategoriesHandler) Delete(c *fiber.Ctx) error {
	category, err := h.categories.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, category, "Category deleted"))
}
