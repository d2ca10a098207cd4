package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/supporthub/api/internal/persistence"
	"github.com/supporthub/api/pkg/util"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	postgres *persistence.Postgres
	redis    *persistence.Redis
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(postgres *persistence.Postgres, redis *persistence.Redis) *HealthHandler {
	return &HealthHandler{postgres: postgres, redis: redis}
}

// Check handles GET /health.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	return c.JSON(util.NewResponse(http.StatusOK, nil, "OK"))
}

// Ready reports service readiness by checking dependencies.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	depStatus := fiber.Map{}
	ready := true

	if h.postgres != nil {
		if err := h.postgres.Ping(ctx); err != nil {
			depStatus["postgres"] = err.Error()
			ready = false
		} else {
			depStatus["postgres"] = "ok"
		}
	}

	if h.redis != nil {
		if err := h.redis.Ping(ctx); err != nil {
			depStatus["redis"] = err.Error()
			ready = false
		} else {
			depStatus["redis"] = "ok"
		}
	}

	if ready {
		return c.JSON(util.NewResponse(http.StatusOK, depStatus, "Ready"))
	}
	return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{
		"status":  "error",
		"message": "one or more dependencies unavailable",
		"errors":  depStatus,
	})
}
