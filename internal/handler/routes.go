package handler

import (
	"examgen/internal/middleware"
	"examgen/internal/web"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the page, the generation endpoint, static assets and
// the health check on app.
func RegisterRoutes(app *fiber.App, h *ExamHandler, validator *middleware.ValidationMiddleware) {
	app.Get("/", h.Index)
	app.Post("/", validator.ValidateExamRequest(), h.GenerateQuestions)
	app.Get("/healthz", h.Health)
	app.Use("/static", web.Assets())
}
