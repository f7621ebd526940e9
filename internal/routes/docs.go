package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arash-p/TeamTrackBack/internal/config"
)

type endpointDoc struct {
	Method  string `json:"method"`
	Path    string `json:"path"`
	Purpose string `json:"purpose"`
}

var endpointDocs = []endpointDoc{
	{"POST", "/auth/register", "Create a user account"},
	{"POST", "/auth/login", "Authenticate and return the user record"},
	{"GET", "/users", "List or search users"},
	{"GET", "/users/:id", "Fetch one user"},
	{"PUT", "/users/:id", "Partially update a user"},
	{"GET", "/health", "Liveness probe"},
	{"POST", "/sessions", "Create a training session"},
	{"GET", "/sessions", "List sessions"},
	{"GET", "/sessions/:id", "Fetch one session"},
	{"POST", "/performance", "Ingest a performance sample"},
	{"GET", "/performance/:playerId", "List samples for a player"},
	{"POST", "/feedback", "Append coach feedback"},
	{"GET", "/feedback/:playerId", "List feedback for a player"},
	{"POST", "/survey", "Append a survey response"},
	{"GET", "/survey/:sessionId", "List survey responses for a session"},
	{"GET", "/reports/:sessionId", "Consolidated session report"},
	{"GET", "/metrics", "Prometheus exposition"},
	{"GET", "/live/:sessionId", "Websocket live sample feed"},
}

// registerDocs exposes the endpoint inventory in development only, behind
// the ENABLE_API_DOCS flag.
func registerDocs(app *fiber.App, cfg *config.Config) {
	if !cfg.DocsEnabled() {
		return
	}
	app.Get("/docs", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"endpoints": endpointDocs})
	})
}
