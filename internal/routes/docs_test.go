package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/arash-p/TeamTrackBack/internal/config"
)

func TestDocsServedInDevelopmentWhenEnabled(t *testing.T) {
	app := fiber.New()
	registerDocs(app, &config.Config{AppEnv: "development", EnableDocs: true})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Endpoints []endpointDoc `json:"endpoints"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Endpoints) == 0 {
		t.Fatal("expected endpoint inventory")
	}
}

func TestDocsHiddenInProduction(t *testing.T) {
	app := fiber.New()
	registerDocs(app, &config.Config{AppEnv: "production", EnableDocs: true})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestDocsHiddenWhenFlagDisabled(t *testing.T) {
	app := fiber.New()
	registerDocs(app, &config.Config{AppEnv: "development", EnableDocs: false})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
