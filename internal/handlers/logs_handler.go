package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/interview-practice/internal/logger"
)

type LogsHandler struct {
	capture *logger.Capture
}

func NewLogsHandler(capture *logger.Capture) *LogsHandler {
	return &LogsHandler{capture: capture}
}

// HandleGetLogs handles GET /api/logs
func (h *LogsHandler) HandleGetLogs(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)
	level := c.Query("level")

	var since time.Time
	if raw := c.Query("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "since must be an RFC3339 timestamp",
			})
		}
		since = parsed
	}

	entries := h.capture.Logs(limit, level, since)

	return c.JSON(fiber.Map{
		"logs":  entries,
		"count": len(entries),
	})
}

// HandleStats handles GET /api/logs/stats
func (h *LogsHandler) HandleStats(c *fiber.Ctx) error {
	return c.JSON(h.capture.Stats())
}

// HandleClear handles DELETE /api/logs
func (h *LogsHandler) HandleClear(c *fiber.Ctx) error {
	h.capture.Clear()
	return c.JSON(fiber.Map{
		"message": "Logs cleared",
	})
}
