package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// setRefreshCookie writes the refresh token as an HttpOnly, path-scoped cookie
// whose expiry matches the token row. Secure is forced on in production.
func (h *AuthHandler) setRefreshCookie(c *fiber.Ctx, token string, expiresAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.RefreshCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: h.cfg.RefreshCookieSameSite,
	})
}

func (h *AuthHandler) clearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.RefreshCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: h.cfg.RefreshCookieSameSite,
	})
}
