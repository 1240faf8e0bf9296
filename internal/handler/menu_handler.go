package handler

import (
	"cafeteria-admin/internal/service"

	"github.com/gofiber/fiber/v2"
)

type MenuHandler struct {
	service service.MenuService
}

func NewMenuHandler(s service.MenuService) *MenuHandler {
	return &MenuHandler{service: s}
}

// GetMenu lists every menu item.
// GET /api/menu
func (h *MenuHandler) GetMenu(c *fiber.Ctx) error {
	items, err := h.service.ListMenu(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// GetMenuItem GET /api/menu/:id
func (h *MenuHandler) GetMenuItem(c *fiber.Ctx) error {
	item, err := h.service.GetMenuItem(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(item)
}

// CreateMenuItem POST /api/menu
func (h *MenuHandler) CreateMenuItem(c *fiber.Ctx) error {
	var req service.CreateMenuItemRequest
	if !parseBody(c, &req) {
		return nil
	}

	item, err := h.service.CreateMenuItem(c.UserContext(), &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(idResponse{ID: item.ID})
}
