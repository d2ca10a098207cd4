package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/supporthub/api/internal/service"
	"github.com/supporthub/api/pkg/util"
)

// RecordingsHandler exposes recording CRUD endpoints.
type RecordingsHandler struct {
	recordings *service.RecordingService
}

// NewRecordingsHandler constructs handler.
func NewRecordingsHandler(recordings *service.RecordingService) *RecordingsHandler {
	return &RecordingsHandler{recordings: recordings}
}

// Create handles POST /v1/api/recordings/create_recording.
func (h *RecordingsHandler) Create(c *fiber.Ctx) error {
	var input service.RecordingCreateInput
	if err := c.BodyParser(&input); err != nil {
		return util.NewValidationError("Invalid request body")
	}
	recording, err := h.recordings.Create(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(util.NewResponse(http.StatusCreated, recording, "Recording created"))
}

// List handles GET /v1/api/recordings/get_recordings.
func (h *RecordingsHandler) List(c *fiber.Ctx) error {
	recordings, err := h.recordings.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, recordings, "Recordings retrieved successfully"))
}

// GetByID handles GET /v1/api/recordings/get_recording_by_id/:id.
func (h *RecordingsHandler) GetByID(c *fiber.Ctx) error {
	recording, err := h.recordings.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, recording, "Recording retrieved successfully"))
}

// Update handles PUT /v1/api/recordings/update_recording/:id.
func (h *RecordingsHandler) Update(c *fiber.Ctx) error {
	var input service.RecordingUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return util.NewValidationError("Invalid request body")
	}
	recording, err := h.recordings.Update(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, recording, "Recording updated"))
}

// Delete handles DELETE /v1/api/recordings/delete_recording/:id.
func (h *RecordingsHandler) Delete(c *fiber.Ctx) error {
	recording, err := h.recordings.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(util.NewResponse(http.StatusOK, recording, "Recording deleted"))
}
