package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/supporthub/api/internal/service"
	"github.com/supporthub/api/pkg/util"
)

// TenantsHandler exposes tenant CRUD endpoints.
type TenantsHandler struct {
	tenants *service.TenantService
}

// NewTenantsHandler constructs handler.
func NewTenantsHandler(tenants *service.TenantService) *TenantsHandler {
	return &TenantsHandler{tenants: tenants}
}

// Create handles POST /v1/api/tenants/create_tenant.
func (h *TenantsHandler) Create(c *fiber.Ctx) error {
	var input service.TenantCreateInput
	if err := c.BodyParser(&input); err != nil {
		return util.NewValidationError("Invalid request body")
	}
	tenant, err := h.tenants.Create(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(util.NewResponse(http.StatusCreated, tenant, "Tenant created"))
}

// List handles GET /v1/api/tenants/get_tenants.
func (h *TenantsHandler) List(c *fiber.Ctx) error {
	tenants, err := h.tenants.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, tenants, "Tenants retrieved successfully"))
}

// GetByID handles GET /v1/api/tenants/get_tenant_by_id/:id.
func (h *TenantsHandler) GetByID(c *fiber.Ctx) error {
	tenant, err := h.tenants.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, tenant, "Tenant retrieved successfully"))
}

// Update handles PUT /v1/api/tenants/update_tenant/:id.
func (h *TenantsHandler) Update(c *fiber.Ctx) error {
	var input service.TenantUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return util.NewValidationError("Invalid request body")
	}
	tenant, err := h.tenants.Update(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, tenant, "Tenant updated"))
}

// Delete handles DELETE /v1/api/tenants/delete_tenant/:id.
func (h *TenantsHandler) Delete(c *fiber.Ctx) error {
	tenant, err := h.tenants.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, tenant, "Tenant deleted"))
}
