package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/OnslaughtSnail/vitae/kernel/store"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct{ store store.Store }

func NewHealthHandler(s store.Store) *HealthHandler { return &HealthHandler{store: s} }

// Health is a basic liveness check.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
}

// Ready verifies the session store answers a ping.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 1*time.Second)
	defer cancel()
	if err := h.store.Ping(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":  "not_ready",
			"details": err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ready"})
}
