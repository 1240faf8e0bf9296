package handler

import (
	"cafeteria-admin/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

// GetInventory GET /api/inventory
func (h *InventoryHandler) GetInventory(c *fiber.Ctx) error {
	items, err := h.service.ListInventory(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// UpsertInventory creates or updates the record for a sku. Both outcomes
// answer 201 with the record id.
// POST /api/inventory
func (h *InventoryHandler) UpsertInventory(c *fiber.Ctx) error {
	var req service.UpsertInventoryRequest
	if !parseBody(c, &req) {
		return nil
	}

	item, _, err := h.service.UpsertInventory(c.UserContext(), &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(idResponse{ID: item.ID})
}
