package routes

import (
	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arash-p/TeamTrackBack/internal/config"
	"github.com/arash-p/TeamTrackBack/internal/handlers"
	"github.com/arash-p/TeamTrackBack/internal/livefeed"
	"github.com/arash-p/TeamTrackBack/internal/metrics"
	"github.com/arash-p/TeamTrackBack/internal/repository"
	"github.com/arash-p/TeamTrackBack/internal/services"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool, m *metrics.Metrics) {
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	performanceRepo := repository.NewPerformanceRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	surveyRepo := repository.NewSurveyRepository(db)

	feedHub := livefeed.NewHub()
	go feedHub.Run()

	sessionService := services.NewSessionService(sessionRepo)
	performanceService := services.NewPerformanceService(performanceRepo, feedHub)
	reportService := services.NewReportService(sessionRepo, performanceRepo, feedbackRepo, surveyRepo)

	authHandler := handlers.NewAuthHandler(userRepo)
	userHandler := handlers.NewUserHandler(userRepo)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	performanceHandler := handlers.NewPerformanceHandler(performanceService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackRepo)
	surveyHandler := handlers.NewSurveyHandler(surveyRepo)
	reportHandler := handlers.NewReportHandler(reportService)

	auth := app.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	users := app.Group("/users")
	users.Get("", userHandler.ListUsers)
	users.Get("/:id", userHandler.GetUser)
	users.Put("/:id", userHandler.UpdateUser)

	sessions := app.Group("/sessions")
	sessions.Post("", sessionHandler.CreateSession)
	sessions.Get("", sessionHandler.ListSessions)
	sessions.Get("/:id", sessionHandler.GetSession)

	performance := app.Group("/performance")
	performance.Post("", performanceHandler.RecordPerformance)
	performance.Get("/:playerId", performanceHandler.ListPerformance)

	feedback := app.Group("/feedback")
	feedback.Post("", feedbackHandler.RecordFeedback)
	feedback.Get("/:playerId", feedbackHandler.ListFeedback)

	survey := app.Group("/survey")
	survey.Post("", surveyHandler.RecordSurvey)
	survey.Get("/:sessionId", surveyHandler.ListSurvey)

	app.Get("/reports/:sessionId", reportHandler.GetReport)

	app.Get("/metrics", m.Handler())

	app.Use("/live/:sessionId", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/live/:sessionId", websocket.New(func(conn *websocket.Conn) {
		client := livefeed.NewClient(feedHub, conn, conn.Params("sessionId"))
		feedHub.Register(client)
		go client.WritePump()
		client.ReadPump()
	}))

	registerDocs(app, cfg)
}
