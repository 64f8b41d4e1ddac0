package middleware

import (
	"log"

	"fittrack/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SessionCookie is the name of the HTTP-only cookie carrying the signed
// session token.
const SessionCookie = "session"

// SessionRequired is a Fiber middleware that gates user-scoped routes.
// Any lookup failure (missing cookie, bad signature, expired token) is
// treated as an anonymous request and rejected with 401.
func SessionRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(SessionCookie)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not authenticated",
			})
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			log.Printf("Session validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not authenticated",
			})
		}

		// Numeric JWT claims decode as float64.
		userID, ok := claims["user_id"].(float64)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not authenticated",
			})
		}

		c.Locals("user_id", uint(userID))
		c.Locals("username", claims["username"])

		return c.Next()
	}
}
