package middleware

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/pkg/logger"
	"taskboard/pkg/utils"
)

// TokenCookie is the http-only cookie the login handler sets. The bearer
// header is accepted as an alternative carrier for non-browser clients.
const TokenCookie = "token"

// tokenFromRequest tries the cookie first, then the Authorization header.
func tokenFromRequest(c *fiber.Ctx) string {
	if token := c.Cookies(TokenCookie); token != "" {
		return token
	}
	return utils.ExtractTokenFromHeader(c.Get("Authorization"))
}

// Protected validates the session token and attaches the caller identity to
// the request context.
func Protected(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return utils.UnauthorizedResponse(c, "Missing token")
		}

		userCtx, err := utils.ValidateToken(token, jwtSecret)
		if err != nil {
			logger.WarnContext(c.UserContext(), "Token validation failed", "error", err)
			switch err {
			case utils.ErrExpiredToken:
				return utils.UnauthorizedResponse(c, "Token has expired")
			default:
				return utils.UnauthorizedResponse(c, "Invalid token")
			}
		}

		c.Locals("user", userCtx)

		return c.Next()
	}
}

// Optional sets the caller identity when a valid token is present but lets
// anonymous requests through. Used by the websocket upgrade: anonymous
// connections are allowed, they just never join a room.
func Optional(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return c.Next()
		}

		userCtx, err := utils.ValidateToken(token, jwtSecret)
		if err != nil {
			return c.Next()
		}

		c.Locals("user", userCtx)
		return c.Next()
	}
}
