package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	auth := app.Group("/auth")
	auth.Post("/signup", h.Signup)
	auth.Post("/login", h.Login)
	auth.Post("/refresh", h.Refresh)
	auth.Post("/logout", h.Logout)
	auth.Post("/password/request-reset", h.RequestPasswordReset)
	auth.Post("/password/reset", h.ResetPassword)
	auth.Post("/verify-email/request", h.RequireAuth(), h.RequestEmailVerification)
	auth.Post("/verify-email/confirm", h.ConfirmEmailVerification)

	app.Get("/me", h.RequireAuth(), h.Me)
}
