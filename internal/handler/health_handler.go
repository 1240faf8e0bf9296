package handler

import (
	"cafeteria-admin/internal/service"

	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	diagnostics service.DiagnosticsService
}

func NewHealthHandler(d service.DiagnosticsService) *HealthHandler {
	return &HealthHandler{diagnostics: d}
}

// Root GET /
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Cafeteria Management Backend Running"})
}

// Diagnostics reports store reachability. It always answers 200.
// GET /test
func (h *HealthHandler) Diagnostics(c *fiber.Ctx) error {
	return c.JSON(h.diagnostics.Report(c.UserContext()))
}
