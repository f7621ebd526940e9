package handlers

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/arash-p/TeamTrackBack/internal/models"
	"github.com/arash-p/TeamTrackBack/internal/services"
)

type ReportHandler struct {
	service reportApplicationService
}

type reportApplicationService interface {
	GetReport(ctx context.Context, sessionID int64) (*models.Report, error)
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// GetReport returns 200 with session: null for a nonexistent session id.
// That differs from GET /sessions/:id on purpose; clients rely on the shape.
func (h *ReportHandler) GetReport(c *fiber.Ctx) error {
	sessionID, err := strconv.ParseInt(c.Params("sessionId"), 10, 64)
	if err != nil || sessionID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	report, err := h.service.GetReport(c.Context(), sessionID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}
