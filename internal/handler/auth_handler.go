package handler

import (
	"cafeteria-admin/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler serves staff creation and the demo PIN login. The PIN login
// is not a security boundary.
type AuthHandler struct {
	staffService service.StaffService
}

func NewAuthHandler(staffService service.StaffService) *AuthHandler {
	return &AuthHandler{staffService: staffService}
}

// CreateStaff POST /api/staff
func (h *AuthHandler) CreateStaff(c *fiber.Ctx) error {
	var req service.CreateStaffRequest
	if !parseBody(c, &req) {
		return nil
	}

	staff, err := h.staffService.CreateStaff(c.UserContext(), &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(idResponse{ID: staff.ID})
}

// Login resolves a PIN to an active staff member.
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req service.LoginRequest
	if !parseBody(c, &req) {
		return nil
	}

	resp, err := h.staffService.Login(c.UserContext(), &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}
