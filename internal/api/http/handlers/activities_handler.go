package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/supporthub/api/internal/service"
	"github.com/supporthub/api/pkg/util"
)

// ActivitiesHandler exposes the recent-activities feed.
type ActivitiesHandler struct {
	activities *service.ActivityService
}

// NewActivitiesHandler constructs handler.
func NewActivitiesHandler(activities *service.ActivityService) *ActivitiesHandler {
	return &ActivitiesHandler{activities: activities}
}

// List handles GET /v1/api/recent_activities/get_recent_activities.
func (h *ActivitiesHandler) List(c *fiber.Ctx) error {
	// Missing or non-numeric values fall back to the defaults; an explicit
	// out-of-range value (including zero) is rejected by the service.
	input := service.ActivityListInput{
		EntityType: c.Query("entity_type"),
		TenantID:   c.Query("tenant_id"),
		Limit:      c.QueryInt("limit", service.FeedDefaultLimit),
		Offset:     c.QueryInt("offset", 0),
		Days:       c.QueryInt("days", service.FeedDefaultDays),
	}
	feed, err := h.activities.List(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, feed, "Recent activities retrieved successfully"))
}

// GetByID handles GET /v1/api/recent_activities/get_activity_by_id/:entity_type/:id.
func (h *ActivitiesHandler) GetByID(c *fiber.Ctx) error {
	detail, err := h.activities.GetByID(c.UserContext(), c.Params("entity_type"), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, detail, "Activity retrieved successfully"))
}
