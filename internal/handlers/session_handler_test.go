package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/arash-p/TeamTrackBack/internal/models"
	"github.com/arash-p/TeamTrackBack/internal/services"
)

type stubSessionService struct {
	createID   int64
	createErr  error
	listResult []models.Session
	listErr    error
	getResult  *models.Session
	getErr     error
	lastInput  services.SessionInput
}

func (s *stubSessionService) CreateSession(_ context.Context, input services.SessionInput) (int64, error) {
	s.lastInput = input
	return s.createID, s.createErr
}

func (s *stubSessionService) ListSessions(_ context.Context) ([]models.Session, error) {
	return s.listResult, s.listErr
}

func (s *stubSessionService) GetSession(_ context.Context, _ int64) (*models.Session, error) {
	return s.getResult, s.getErr
}

func TestCreateSessionReturnsGeneratedID(t *testing.T) {
	service := &stubSessionService{createID: 12}
	handler := &SessionHandler{service: service}

	app := fiber.New()
	app.Post("/sessions", handler.CreateSession)

	req := httptest.NewRequest(http.MethodPost, "/sessions", strings.NewReader(`{
		"name": "Drill",
		"date": "06/01/2025",
		"startTime": "09:00",
		"endTime": "10:30"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Success   bool  `json:"success"`
		SessionID int64 `json:"sessionId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Success || body.SessionID != 12 {
		t.Fatalf("expected success with sessionId 12, got %+v", body)
	}
	if service.lastInput.Name == nil || *service.lastInput.Name != "Drill" {
		t.Fatalf("expected name Drill passed through, got %v", service.lastInput.Name)
	}
	if service.lastInput.Date == nil || *service.lastInput.Date != "06/01/2025" {
		t.Fatalf("expected date passed through, got %v", service.lastInput.Date)
	}
}

func TestCreateSessionEmptyBodySucceeds(t *testing.T) {
	service := &stubSessionService{createID: 3}
	handler := &SessionHandler{service: service}

	app := fiber.New()
	app.Post("/sessions", handler.CreateSession)

	req := httptest.NewRequest(http.MethodPost, "/sessions", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	service := &stubSessionService{getErr: pgx.ErrNoRows}
	handler := &SessionHandler{service: service}

	app := fiber.New()
	app.Get("/sessions/:id", handler.GetSession)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/sessions/99", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestGetSessionInvalidID(t *testing.T) {
	handler := &SessionHandler{service: &stubSessionService{}}

	app := fiber.New()
	app.Get("/sessions/:id", handler.GetSession)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/sessions/abc", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestListSessionsReturnsArray(t *testing.T) {
	service := &stubSessionService{
		listResult: []models.Session{{ID: 1, Title: "Drill"}, {ID: 2, Title: "Match"}},
	}
	handler := &SessionHandler{service: service}

	app := fiber.New()
	app.Get("/sessions", handler.ListSessions)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/sessions", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var sessions []models.Session
	if err := json.NewDecoder(resp.Body).Decode(&sessions); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
}
