package server

import (
	"log"

	"lessonplan-review-be/internal/bootstrap"
	"lessonplan-review-be/internal/config"
	"lessonplan-review-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit:    50 * 1024 * 1024, // multipart uploads; bodies are discarded after parsing
		ErrorHandler: serverutils.ErrorHandler,
	})

	// Middleware. Credentials cannot be combined with a wildcard origin.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: cfg.App.CorsAllowedOrigins != "*",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware())

	registerRoutes(app, cfg, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func registerRoutes(app *fiber.App, cfg *config.Config, c *bootstrap.Container) {
	api := app.Group("/api")
	auth := serverutils.SessionMiddleware(cfg.Session.JwtSecret)

	c.SessionController.RegisterRoutes(api, auth)
	c.SourceController.RegisterRoutes(api, auth)
	c.ChatController.RegisterRoutes(api, auth)
	c.NoteController.RegisterRoutes(api, auth)
	c.ScoreController.RegisterRoutes(api, auth)
	c.GenerateController.RegisterRoutes(api, auth)

	c.NotificationHandler.RegisterRoutes(api)
}
