package handlers

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/arash-p/TeamTrackBack/internal/models"
	"github.com/arash-p/TeamTrackBack/internal/repository"
	"github.com/arash-p/TeamTrackBack/pkg/normalize"
)

type SurveyHandler struct {
	surveyRepo *repository.SurveyRepository
}

func NewSurveyHandler(surveyRepo *repository.SurveyRepository) *SurveyHandler {
	return &SurveyHandler{surveyRepo: surveyRepo}
}

type recordSurveyRequest struct {
	PlayerID  any             `json:"player_id"`
	SessionID any             `json:"session_id"`
	Response  json.RawMessage `json:"response"`

	Rating      any     `json:"rating"`
	Condition   any     `json:"condition"`
	Performance any     `json:"performance"`
	Notes       *string `json:"notes"`
}

func (h *SurveyHandler) RecordSurvey(c *fiber.Ctx) error {
	var req recordSurveyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	response, err := resolveSurveyResponse(req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid survey response"})
	}

	entry := &models.SurveyEntry{
		PlayerID:  normalize.ToID(req.PlayerID),
		SessionID: normalize.ToID(req.SessionID),
		Response:  response,
	}
	if err := h.surveyRepo.Create(c.Context(), entry); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "surveyId": entry.ID})
}

func (h *SurveyHandler) ListSurvey(c *fiber.Ctx) error {
	sessionID, err := strconv.ParseInt(c.Params("sessionId"), 10, 64)
	if err != nil || sessionID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	entries, err := h.surveyRepo.ListBySession(c.Context(), sessionID)
	if err != nil {
		return storeError(c, err, "Session not found")
	}
	return c.JSON(entries)
}

// resolveSurveyResponse prefers an explicit response payload and otherwise
// synthesizes one from the discrete form fields. The payload is stored and
// returned verbatim; its shape is never interpreted.
func resolveSurveyResponse(req recordSurveyRequest) (json.RawMessage, error) {
	if len(req.Response) > 0 && !bytes.Equal(req.Response, []byte("null")) {
		return req.Response, nil
	}
	return json.Marshal(map[string]any{
		"rating":      req.Rating,
		"condition":   req.Condition,
		"performance": req.Performance,
		"notes":       req.Notes,
	})
}
