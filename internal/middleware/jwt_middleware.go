package middleware

import (
	"log"
	"strings"

	"storefront/internal/apperrors"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired is a Fiber middleware to check for a valid JWT token.
// On success the token claims are stored in the request context for
// subsequent handlers.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperrors.Unauthorized("Authorization header is required")
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return apperrors.Unauthorized("Authorization header format must be 'Bearer <token>'")
		}

		tokenString := parts[1]

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return apperrors.Unauthorized("Invalid or expired token")
		}

		// Store claims in Fiber context for subsequent handlers.
		c.Locals("user_id", claims["user_id"])
		c.Locals("username", claims["username"])
		if admin, ok := claims["admin"].(bool); ok {
			c.Locals("admin", admin)
		} else {
			c.Locals("admin", false)
		}

		// Continue to the next handler
		return c.Next()
	}
}

// AdminRequired gates a route on the admin claim of the verified token.
// It must run after AuthRequired. The unauthorized path takes exactly one
// terminal action: the 401 error response.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		admin, ok := c.Locals("admin").(bool)
		if !ok || !admin {
			return apperrors.Unauthorized("Unauthorized access")
		}
		return c.Next()
	}
}
