package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yumyum-spot/menu-service/internal/api/dto"
)

// AuthTestHandler exposes simple endpoints to verify token handling.
type AuthTestHandler struct{}

// NewAuthTestHandler constructs handler.
func NewAuthTestHandler() *AuthTestHandler {
	return &AuthTestHandler{}
}

// Authenticated handles GET /api/authtest; any valid token passes.
func (h *AuthTestHandler) Authenticated(c *fiber.Ctx) error {
	return c.JSON(dto.Success("You are authorized User"))
}

// AdminOnly handles GET /api/authtest/:value; requires the Admin role.
func (h *AuthTestHandler) AdminOnly(c *fiber.Ctx) error {
	return c.JSON(dto.Success("You are authorized User, with Role of Admin"))
}
