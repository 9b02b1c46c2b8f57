package middleware

import (
	"go-pos-dashboard/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// SessionCookie adalah nama cookie sesi dashboard.
const SessionCookie = "session"

// RequireSession is middleware that validates the session cookie and sets
// user info in context
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookie)
		if token == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing session"})
		}

		claims, err := jwt.ValidateSession(token)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired session"})
		}

		// Set user info in context for downstream handlers
		c.Locals("username", claims.Username)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}

// RequireRole checks if the authenticated user has the required role
func RequireRole(requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return c.Status(403).JSON(fiber.Map{"error": "No role found"})
		}
		if role != requiredRole {
			return c.Status(403).JSON(fiber.Map{
				"error": "Forbidden: requires '" + requiredRole + "' role",
			})
		}
		return c.Next()
	}
}
