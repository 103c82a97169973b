// Package http wires the intake engine onto a Fiber application.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/OnslaughtSnail/vitae/api/http/handlers"
)

// Register wires all HTTP routes onto the given Fiber app.
func Register(app *fiber.App, health *handlers.HealthHandler, chat *handlers.ChatHandler, session *handlers.SessionHandler, export *handlers.ExportHandler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	v1.Post("/chat", chat.Chat)

	sg := v1.Group("/sessions")
	sg.Get("/:id", session.Get)
	sg.Get("/:id/export.pdf", export.PDF)
	sg.Get("/:id/export.md", export.Markdown)
}
