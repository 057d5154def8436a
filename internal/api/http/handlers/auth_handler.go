package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/yumyum-spot/menu-service/internal/api/dto"
	"github.com/yumyum-spot/menu-service/internal/service"
	apperrors "github.com/yumyum-spot/menu-service/pkg/util"
)

// AuthHandler exposes registration and login endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError([]string{"invalid payload"})
	}
	if msgs := dto.Validate(req); len(msgs) > 0 {
		return apperrors.NewValidationError(msgs)
	}

	user, role, err := h.auth.Register(c.UserContext(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(dto.Success(fiber.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  role,
	}))
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError([]string{"invalid payload"})
	}
	if msgs := dto.Validate(req); len(msgs) > 0 {
		return apperrors.NewValidationError(msgs)
	}

	user, role, token, _, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.Success(dto.LoginResponse{
		Email: user.Email,
		Token: token,
		Role:  string(role),
	}))
}
