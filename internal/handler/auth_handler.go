package handler

import (
	"errors"
	"time"

	"go-pos-dashboard/internal/middleware"
	"go-pos-dashboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
	sessionTTL  time.Duration
}

func NewAuthHandler(authService service.AuthService, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, sessionTTL: sessionTTL}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles user authentication
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	result, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		status := 500
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			status = 400
		case errors.Is(err, service.ErrInvalidCredentials):
			status = 401
		case errors.Is(err, service.ErrUserNotFound):
			status = 404
		case errors.Is(err, service.ErrUnknownRole):
			status = 403
		case errors.Is(err, service.ErrLoginUnavailable):
			status = 502
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    result.Token,
		Expires:  time.Now().Add(h.sessionTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(result)
}

// Logout clears the session cookie
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return c.JSON(fiber.Map{"message": "Logged out"})
}
