package handler

import (
	"errors"
	"fmt"

	"github.com/dcsil/k.ai/config"
	"github.com/dcsil/k.ai/internal/auth/dto"
	"github.com/dcsil/k.ai/internal/auth/service"
	autherror "github.com/dcsil/k.ai/internal/errors"
	"github.com/dcsil/k.ai/pkg/constant"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type AuthHandler struct {
	sessions *service.SessionService
	tokens   service.TokenGenerator
	cfg      *config.Config
}

func NewAuthHandler(sessions *service.SessionService, tokens service.TokenGenerator, cfg *config.Config) *AuthHandler {
	return &AuthHandler{sessions: sessions, tokens: tokens, cfg: cfg}
}

// parseBody decodes and validates a JSON request body. Both failure modes are
// a 422 with per-field details.
func (h *AuthHandler) parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return autherror.Validation(map[string]any{"body": "invalid JSON body"})
	}

	if err := validate.Struct(out); err != nil {
		details := map[string]any{}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				details[fe.Field()] = fmt.Sprintf("failed on the '%s' rule", fe.Tag())
			}
		}
		return autherror.Validation(details)
	}

	return nil
}

func requestContext(c *fiber.Ctx) dto.RequestContext {
	return dto.RequestContext{
		IP:        c.IP(),
		UserAgent: c.Get(fiber.HeaderUserAgent),
	}
}

// sessionResponse shapes the JSON body for signup/login/refresh. The refresh
// token itself never appears here; it travels only in the HttpOnly cookie.
func sessionResponse(session *dto.Session, includeUser bool) *dto.SessionResponse {
	resp := &dto.SessionResponse{
		AccessToken:          session.AccessToken,
		AccessTokenExpiresIn: session.AccessTokenExpiresIn,
		TokenType:            constant.DefaultTokenType,
	}
	if includeUser {
		resp.User = dto.NewUserOutput(session.User)
	}

	return resp
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var input dto.SignupInput
	if err := h.parseBody(c, &input); err != nil {
		return err
	}

	session, err := h.sessions.SignUp(c.Context(), input, requestContext(c))
	if err != nil {
		return err
	}

	h.setRefreshCookie(c, session.RefreshToken, session.RefreshTokenExpiresAt)

	return c.Status(fiber.StatusCreated).JSON(sessionResponse(session, true))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := h.parseBody(c, &input); err != nil {
		return err
	}

	session, err := h.sessions.Login(c.Context(), input, requestContext(c))
	if err != nil {
		return err
	}

	h.setRefreshCookie(c, session.RefreshToken, session.RefreshTokenExpiresAt)

	return c.Status(fiber.StatusOK).JSON(sessionResponse(session, true))
}

// Refresh reads the refresh token from its cookie only, never from the body.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	session, err := h.sessions.Refresh(c.Context(), c.Cookies(h.cfg.RefreshCookieName), requestContext(c))
	if err != nil {
		return err
	}

	h.setRefreshCookie(c, session.RefreshToken, session.RefreshTokenExpiresAt)

	return c.Status(fiber.StatusOK).JSON(sessionResponse(session, false))
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.sessions.Logout(c.Context(), c.Cookies(h.cfg.RefreshCookieName)); err != nil {
		return err
	}

	h.clearRefreshCookie(c)

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) RequestPasswordReset(c *fiber.Ctx) error {
	var input dto.RequestPasswordResetInput
	if err := h.parseBody(c, &input); err != nil {
		return err
	}

	requested, token, err := h.sessions.RequestPasswordReset(c.Context(), input.Email)
	if err != nil {
		return err
	}

	body := dto.PasswordResetRequested{OK: true, Requested: requested}
	if requested && h.cfg.ExposeTestTokens {
		body.MockResetToken = &token
	}

	return c.Status(fiber.StatusAccepted).JSON(body)
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var input dto.ResetPasswordInput
	if err := h.parseBody(c, &input); err != nil {
		return err
	}

	if err := h.sessions.ResetPassword(c.Context(), input.Token, input.NewPassword); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) RequestEmailVerification(c *fiber.Ctx) error {
	alreadyVerified, token, err := h.sessions.RequestEmailVerification(c.Context(), UserID(c))
	if err != nil {
		return err
	}

	body := dto.EmailVerificationRequested{OK: true, AlreadyVerified: alreadyVerified}
	if !alreadyVerified && h.cfg.ExposeTestTokens {
		body.MockVerificationToken = &token
	}

	return c.Status(fiber.StatusAccepted).JSON(body)
}

func (h *AuthHandler) ConfirmEmailVerification(c *fiber.Ctx) error {
	var input dto.ConfirmEmailVerificationInput
	if err := h.parseBody(c, &input); err != nil {
		return err
	}

	if err := h.sessions.ConfirmEmailVerification(c.Context(), input.Token); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Me returns the authenticated user's own record.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.sessions.GetUser(c.Context(), UserID(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewUserOutput(user))
}
