package handlers

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/arash-p/TeamTrackBack/internal/models"
	"github.com/arash-p/TeamTrackBack/internal/services"
)

type SessionHandler struct {
	service sessionApplicationService
}

type sessionApplicationService interface {
	CreateSession(ctx context.Context, input services.SessionInput) (int64, error)
	ListSessions(ctx context.Context) ([]models.Session, error)
	GetSession(ctx context.Context, sessionID int64) (*models.Session, error)
}

func NewSessionHandler(service *services.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

type createSessionRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	CoachID     *int64  `json:"coach_id"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	SessionType *string `json:"session_type"`
	Location    *string `json:"location"`

	SessionName    *string `json:"sessionName"`
	Name           *string `json:"name"`
	SessionTypeAlt *string `json:"sessionType"`
	TypeAlt        *string `json:"type"`
	Date           *string `json:"date"`
	StartClock     *string `json:"startTime"`
	EndClock       *string `json:"endTime"`
	Notes          *string `json:"notes"`
}

func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	var req createSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	sessionID, err := h.service.CreateSession(c.Context(), services.SessionInput{
		Title:          req.Title,
		Description:    req.Description,
		CoachID:        req.CoachID,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		SessionType:    req.SessionType,
		Location:       req.Location,
		SessionName:    req.SessionName,
		Name:           req.Name,
		SessionTypeAlt: req.SessionTypeAlt,
		TypeAlt:        req.TypeAlt,
		Date:           req.Date,
		StartClock:     req.StartClock,
		EndClock:       req.EndClock,
		Notes:          req.Notes,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "sessionId": sessionID})
}

func (h *SessionHandler) ListSessions(c *fiber.Ctx) error {
	sessions, err := h.service.ListSessions(c.Context())
	if err != nil {
		return storeError(c, err, "Session not found")
	}
	return c.JSON(sessions)
}

func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	sessionID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || sessionID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	session, err := h.service.GetSession(c.Context(), sessionID)
	if err != nil {
		return storeError(c, err, "Session not found")
	}
	return c.JSON(session)
}
