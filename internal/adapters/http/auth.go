package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"faregate/internal/pkg/token"
)

// RequireAdmin guards the admin-only routes: a valid bearer token with
// the admin claim set. Ordinary users can log in but get a 403 here,
// mirroring the kiosk's "Access denied. Not an admin." path.
func RequireAdmin(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return errUnauthorized(c, "access token required")
		}

		claims, err := token.Validate(strings.TrimPrefix(authHeader, "Bearer "), secret)
		if err != nil {
			if err == token.ErrTokenExpired {
				return errUnauthorized(c, "access token expired")
			}
			return errUnauthorized(c, "invalid access token")
		}

		if !claims.Admin {
			return errForbidden(c, "admin privileges required")
		}

		c.Locals("username", claims.Username)
		return c.Next()
	}
}
