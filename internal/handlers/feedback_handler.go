package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/arash-p/TeamTrackBack/internal/models"
	"github.com/arash-p/TeamTrackBack/internal/repository"
	"github.com/arash-p/TeamTrackBack/pkg/normalize"
)

type FeedbackHandler struct {
	feedbackRepo *repository.FeedbackRepository
}

func NewFeedbackHandler(feedbackRepo *repository.FeedbackRepository) *FeedbackHandler {
	return &FeedbackHandler{feedbackRepo: feedbackRepo}
}

type recordFeedbackRequest struct {
	CoachID   any     `json:"coach_id"`
	PlayerID  any     `json:"player_id"`
	SessionID any     `json:"session_id"`
	Notes     *string `json:"notes"`
}

// RecordFeedback appends one row with no field validation; malformed ids
// store as null.
func (h *FeedbackHandler) RecordFeedback(c *fiber.Ctx) error {
	var req recordFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	notes := ""
	if req.Notes != nil {
		notes = *req.Notes
	}

	entry := &models.Feedback{
		CoachID:   normalize.ToID(req.CoachID),
		PlayerID:  normalize.ToID(req.PlayerID),
		SessionID: normalize.ToID(req.SessionID),
		Notes:     notes,
	}
	if err := h.feedbackRepo.Create(c.Context(), entry); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "feedbackId": entry.ID})
}

func (h *FeedbackHandler) ListFeedback(c *fiber.Ctx) error {
	playerID, err := strconv.ParseInt(c.Params("playerId"), 10, 64)
	if err != nil || playerID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid player id"})
	}

	entries, err := h.feedbackRepo.ListByPlayer(c.Context(), playerID)
	if err != nil {
		return storeError(c, err, "Player not found")
	}
	return c.JSON(entries)
}
