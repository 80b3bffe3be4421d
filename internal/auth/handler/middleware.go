package handler

import (
	"strings"

	autherror "github.com/dcsil/k.ai/internal/errors"
	"github.com/gofiber/fiber/v2"
)

const userIDLocal = "userID"

// RequireAuth guards a route with Bearer access-token verification and stashes
// the subject id in the request locals.
func (h *AuthHandler) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return autherror.ErrUnauthorized
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		claims, err := h.tokens.VerifyAccessToken(token)
		if err != nil {
			return autherror.ErrUnauthorized
		}

		c.Locals(userIDLocal, claims.Subject)

		return c.Next()
	}
}

// UserID returns the authenticated subject id set by RequireAuth.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(userIDLocal).(string)
	return id
}
