package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// Validation failures short-circuit before the repository is touched, so a
// nil repo is fine for these paths.

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestRegisterRequiresIdentifier(t *testing.T) {
	handler := &AuthHandler{}
	app := fiber.New()
	app.Post("/auth/register", handler.Register)

	resp := postJSON(t, app, "/auth/register", `{"password": "longenough"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	handler := &AuthHandler{}
	app := fiber.New()
	app.Post("/auth/register", handler.Register)

	resp := postJSON(t, app, "/auth/register", `{"username": "lena", "password": "abc"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestRegisterRejectsInvalidRole(t *testing.T) {
	handler := &AuthHandler{}
	app := fiber.New()
	app.Post("/auth/register", handler.Register)

	resp := postJSON(t, app, "/auth/register",
		`{"username": "lena", "password": "longenough", "role": "admin"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestLoginRequiresIdentifierAndPassword(t *testing.T) {
	handler := &AuthHandler{}
	app := fiber.New()
	app.Post("/auth/login", handler.Login)

	resp := postJSON(t, app, "/auth/login", `{"email": "a@b.c"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
