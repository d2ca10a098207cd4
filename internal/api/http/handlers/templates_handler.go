package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/supporthub/api/internal/service"
	"github.com/supporthub/api/pkg/util"
)

// TemplatesHandler exposes template CRUD endpoints.
type TemplatesHandler struct {
	templates *service.TemplateService
}

// NewTemplatesHandler constructs handler.
func NewTemplatesHandler(templates *service.TemplateService) *TemplatesHandler {
	return &TemplatesHandler{templates: templates}
}

// Create handles POST /v1/api/templates/create_template.
func (h *TemplatesHandler) Create(c *fiber.Ctx) error {
	var input service.TemplateCreateInput
	if err := c.BodyParser(&input); err != nil {
		return util.NewValidationError("Invalid request body")
	}
	template, err := h.templates.Create(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(util.NewResponse(http.StatusCreated, template, "Template created"))
}

// List handles GET /v1/api/templates/get_templates.
func (h *TemplatesHandler) List(c *fiber.Ctx) error {
	templates, err := h.templates.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, templates, "Templates retrieved successfully"))
}

// GetByID handles GET /v1/api/templates/get_template_by_id/:id.
func (h *TemplatesHandler) GetByID(c *fiber.Ctx) error {
	template, err := h.templates.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, template, "Template retrieved successfully"))
}

// Update handles PUT /v1/api/templates/update_template/:id.
func (h *TemplatesHandler) Update(c *fiber.Ctx) error {
	var input service.TemplateUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return util.NewValidationError("Invalid request body")
	}
	template, err := h.templates.Update(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, template, "Template updated"))
}

// Delete handles DELETE /v1/api/templates/delete_template/:id.
func (h *TemplatesHandler) Delete(c *fiber.Ctx) error {
	template, err := h.templates.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, template, "Template deleted"))
}
