package handlers

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/arash-p/TeamTrackBack/internal/models"
	"github.com/arash-p/TeamTrackBack/internal/services"
	"github.com/arash-p/TeamTrackBack/pkg/normalize"
)

type PerformanceHandler struct {
	service performanceApplicationService
}

type performanceApplicationService interface {
	RecordPerformance(ctx context.Context, sample models.PerformanceSample) (int64, error)
	ListPerformance(ctx context.Context, playerID int64) ([]models.PerformanceSample, error)
}

func NewPerformanceHandler(service *services.PerformanceService) *PerformanceHandler {
	return &PerformanceHandler{service: service}
}

// Metric fields decode as any so malformed values coerce to null instead of
// failing the whole request body.
type recordPerformanceRequest struct {
	PlayerID       any `json:"player_id"`
	SessionID      any `json:"session_id"`
	DistanceMeters any `json:"distance_meters"`
	Speed          any `json:"speed"`
	Acceleration   any `json:"acceleration"`
	Deceleration   any `json:"deceleration"`
	CadenceSPM     any `json:"cadence_spm"`
	HeartRate      any `json:"heart_rate"`
}

func (h *PerformanceHandler) RecordPerformance(c *fiber.Ctx) error {
	var req recordPerformanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	playerID := normalize.ToID(req.PlayerID)
	if playerID == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "player_id is required"})
	}

	performanceID, err := h.service.RecordPerformance(c.Context(), models.PerformanceSample{
		PlayerID:       playerID,
		SessionID:      normalize.ToID(req.SessionID),
		DistanceMeters: normalize.ToFiniteFloat(req.DistanceMeters),
		Speed:          normalize.ToFiniteFloat(req.Speed),
		Acceleration:   normalize.ToFiniteFloat(req.Acceleration),
		Deceleration:   normalize.ToFiniteFloat(req.Deceleration),
		CadenceSPM:     normalize.ToFiniteFloat(req.CadenceSPM),
		HeartRate:      normalize.ToFiniteFloat(req.HeartRate),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "performanceId": performanceID})
}

func (h *PerformanceHandler) ListPerformance(c *fiber.Ctx) error {
	playerID, err := strconv.ParseInt(c.Params("playerId"), 10, 64)
	if err != nil || playerID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid player id"})
	}

	samples, err := h.service.ListPerformance(c.Context(), playerID)
	if err != nil {
		return storeError(c, err, "Player not found")
	}
	return c.JSON(samples)
}
