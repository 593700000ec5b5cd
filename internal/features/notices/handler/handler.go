package handler

import (
	"errors"
	"net/http"

	"tracking-viewer/internal/core/logger"
	"tracking-viewer/internal/features/notices/domain"
	"tracking-viewer/internal/features/notices/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NoticeHandler handles HTTP requests for operator notices.
type NoticeHandler struct {
	service ports.NoticeService
}

// NewNoticeHandler creates a new NoticeHandler.
func NewNoticeHandler(service ports.NoticeService) *NoticeHandler {
	return &NoticeHandler{
		service: service,
	}
}

// PublishNoticeRequest represents the request body for publishing a notice.
type PublishNoticeRequest struct {
	Message    string       `json:"message"`
	Level      domain.Level `json:"level"`
	TTLSeconds int          `json:"ttl_seconds"`
}

// Publish handles PUT /api/notice.
// @Summary Publish a notice
// @Description Replaces the notice shown above the tracking table.
// @Tags notice
// @Accept json
// @Produce json
// @Param notice body PublishNoticeRequest true "Notice details"
// @Success 200 {object} domain.Notice
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/notice [put]
func (h *NoticeHandler) Publish(c *fiber.Ctx) error {
	var req PublishNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	notice, err := h.service.Publish(c.UserContext(), req.Message, req.Level, req.TTLSeconds)
	switch {
	case errors.Is(err, domain.ErrInvalidLevel):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid notice level. Must be INFO, WARNING, or DANGER",
		})
	case errors.Is(err, domain.ErrEmptyMessage), errors.Is(err, domain.ErrTooLong), errors.Is(err, domain.ErrNegativeTTL):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case err != nil:
		logger.Get().Error("Failed to publish notice", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(notice)
}

// Current handles GET /api/notice.
// @Summary Get the active notice
// @Tags notice
// @Produce json
// @Success 200 {object} domain.Notice
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/notice [get]
func (h *NoticeHandler) Current(c *fiber.Ctx) error {
	notice, err := h.service.Current(c.UserContext())
	if err != nil {
		logger.Get().Error("Failed to get notice", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	if notice == nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"error": "No active notice",
		})
	}

	return c.Status(http.StatusOK).JSON(notice)
}

// Clear handles DELETE /api/notice.
// @Summary Clear the active notice
// @Tags notice
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/notice [delete]
func (h *NoticeHandler) Clear(c *fiber.Ctx) error {
	if err := h.service.Clear(c.UserContext()); err != nil {
		logger.Get().Error("Failed to clear notice", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Notice cleared",
	})
}

// Register mounts the notice routes on router.
func (h *NoticeHandler) Register(router fiber.Router) {
	router.Put("/api/notice", h.Publish)
	router.Get("/api/notice", h.Current)
	router.Delete("/api/notice", h.Clear)
}
