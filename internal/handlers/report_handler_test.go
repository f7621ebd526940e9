package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/arash-p/TeamTrackBack/internal/models"
)

type stubReportService struct {
	result *models.Report
	err    error
}

func (s *stubReportService) GetReport(_ context.Context, _ int64) (*models.Report, error) {
	return s.result, s.err
}

func TestGetReportMissingSessionReturnsNullSessionShape(t *testing.T) {
	service := &stubReportService{result: &models.Report{
		Performances: []models.PerformanceSample{},
		Feedback:     []models.FeedbackWithCoach{},
		Survey:       []models.SurveyEntry{},
	}}
	handler := &ReportHandler{service: service}

	app := fiber.New()
	app.Get("/reports/:sessionId", handler.GetReport)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/reports/999", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	// 200 with session: null, not a 404; clients depend on this shape.
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Session      *json.RawMessage  `json:"session"`
		Performances []json.RawMessage `json:"performances"`
		Feedback     []json.RawMessage `json:"feedback"`
		Survey       []json.RawMessage `json:"survey"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Session != nil {
		t.Fatalf("expected null session, got %s", string(*body.Session))
	}
	if body.Performances == nil || body.Feedback == nil || body.Survey == nil {
		t.Fatalf("expected empty arrays, not null lists")
	}
}

func TestGetReportInvalidSessionID(t *testing.T) {
	handler := &ReportHandler{service: &stubReportService{}}

	app := fiber.New()
	app.Get("/reports/:sessionId", handler.GetReport)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/reports/-1", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
