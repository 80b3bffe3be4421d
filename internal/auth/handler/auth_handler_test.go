package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dcsil/k.ai/config"
	"github.com/dcsil/k.ai/internal/auth/domain"
	"github.com/dcsil/k.ai/internal/auth/handler"
	"github.com/dcsil/k.ai/internal/auth/service"
	"github.com/dcsil/k.ai/internal/mocks"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type handlerFixture struct {
	app    *fiber.App
	repo   *mocks.MockUserRepository
	tokens *mocks.MockTokenGenerator
	cfg    *config.Config
}

func newHandlerFixture(t *testing.T) (*handlerFixture, *gomock.Controller) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	tokens := mocks.NewMockTokenGenerator(ctrl)
	cfg := &config.Config{
		Env:                   "test",
		MaxLoginAttempts:      5,
		LockoutDuration:       15 * time.Minute,
		PasswordResetTTL:      time.Hour,
		EmailVerificationTTL:  24 * time.Hour,
		RefreshCookieName:     "refresh_token",
		RefreshCookieSameSite: "Lax",
		ExposeTestTokens:      true,
	}

	sessions := service.NewSessionService(repo, tokens, cfg, zap.NewNop())
	h := handler.NewAuthHandler(sessions, tokens, cfg)

	app := fiber.New(fiber.Config{ErrorHandler: handler.NewErrorHandler(zap.NewNop())})
	handler.RegisterRoutes(app, h)

	return &handlerFixture{app: app, repo: repo, tokens: tokens, cfg: cfg}, ctrl
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()

	body := decodeBody(t, resp)
	errObj, ok := body["error"].(map[string]any)
	require.True(t, ok, "expected an error envelope, got %v", body)
	code, _ := errObj["code"].(string)
	return code
}

func refreshCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func expectSessionMint(f *handlerFixture, email, role string) {
	f.tokens.EXPECT().NewOpaqueToken().Return("opaque-refresh", nil)
	f.tokens.EXPECT().HashToken("opaque-refresh").Return("refresh-hash")
	f.tokens.EXPECT().GetRefreshTokenExpiry().Return(30 * 24 * time.Hour)
	f.tokens.EXPECT().SignAccessToken(gomock.Any(), email, role).Return("signed-access-token", nil)
	f.tokens.EXPECT().GetAccessTokenExpiry().Return(15 * time.Minute)
}

func TestSignup_Created(t *testing.T) {
	f, ctrl := newHandlerFixture(t)
	defer ctrl.Finish()

	f.repo.EXPECT().GetByEmail(gomock.Any(), "artist@example.com").Return(nil, nil)
	expectSessionMint(f, "artist@example.com", "artist")
	f.repo.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(domain.UserRepository) error) error { return fn(f.repo) })
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().StoreRefreshToken(gomock.Any(), gomock.Any()).Return(nil)

	resp := postJSON(t, f.app, "/auth/signup", fiber.Map{
		"email":       "artist@example.com",
		"password":    "password123",
		"displayName": "Artist",
	})

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "signed-access-token", body["accessToken"])
	assert.Equal(t, float64(900), body["accessTokenExpiresIn"])
	assert.Equal(t, "Bearer", body["tokenType"])
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "artist@example.com", user["email"])
	assert.NotContains(t, user, "passwordHash")

	cookie := refreshCookie(resp, "refresh_token")
	require.NotNil(t, cookie)
	assert.Equal(t, "opaque-refresh", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)

	// The refresh token must never appear in the body.
	raw, _ := json.Marshal(body)
	assert.NotContains(t, string(raw), "opaque-refresh")
}

func TestSignup_DuplicateEmail(t *testing.T) {
	f, ctrl := newHandlerFixture(t)
	defer ctrl.Finish()

	f.repo.EXPECT().GetByEmail(gomock.Any(), "artist@example.com").
		Return(&domain.User{ID: "existing"}, nil)

	resp := postJSON(t, f.app, "/auth/signup", fiber.Map{
		"email":    "artist@example.com",
		"password": "password123",
	})

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "EMAIL_EXISTS", errorCode(t, resp))
}

func TestSignup_ValidationError(t *testing.T) {
	f, ctrl := newHandlerFixture(t)
	defer ctrl.Finish()

	resp := postJSON(t, f.app, "/auth/signup", fiber.Map{
		"email":    "not-an-email",
		"password": "short",
	})

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	body := decodeBody(t, resp)
	errObj := body["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_ERROR", errObj["code"])
	details := errObj["details"].(map[string]any)
	assert.Contains(t, details, "Email")
	assert.Contains(t, details, "Password")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	f, ctrl := newHandlerFixture(t)
	defer ctrl.Finish()

	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &domain.User{ID: "user-id", Email: "artist@example.com", PasswordHash: string(hashed)}

	f.repo.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
	f.repo.EXPECT().SetLoginFailureState(gomock.Any(), user.ID, 1, gomock.Nil()).Return(nil)
	f.repo.EXPECT().RecordLoginAttempt(gomock.Any(), gomock.Any()).Return(nil)

	resp := postJSON(t, f.app, "/auth/login", fiber.Map{
		"email":    user.Email,
		"password": "wrong",
	})

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, resp))
	assert.Nil(t, refreshCookie(resp, "refresh_token"))
}

func TestLogin_Locked(t *testing.T) {
	f, ctrl := newHandlerFixture(t)
	defer ctrl.Finish()

	lockedUntil := time.Now().Add(10 * time.Minute)
	user := &domain.User{
		ID:           "user-id",
		Email:        "artist@example.com",
		PasswordHash: "irrelevant",
		LockedUntil:  &lockedUntil,
	}

	f.repo.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)

	resp := postJSON(t, f.app, "/auth/login", fiber.Map{
		"email":    user.Email,
		"password": "whatever",
	})

	assert.Equal(t, fiber.StatusLocked, resp.StatusCode)
	assert.Equal(t, "ACCOUNT_LOCKED", errorCode(t, resp))
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderRetryAfter))
}

func TestRefresh_MissingCookie(t *testing.T) {
	f, ctrl := newHandlerFixture(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "REFRESH_TOKEN_MISSING", errorCode(t, resp))
}

func TestRefresh_RotatesCookie(t *testing.T) {
	f, ctrl := newHandlerFixture(t)
	defer ctrl.Finish()

	existing := &domain.RefreshToken{
		ID:        "rt-old",
		UserID:    "user-id",
		TokenHash: "old-hash",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	user := &domain.User{ID: "user-id", Email: "artist@example.com", Role: "artist"}

	f.tokens.EXPECT().HashToken("old-plaintext").Return("old-hash")
	f.repo.EXPECT().GetRefreshTokenByHash(gomock.Any(), "old-hash").Return(existing, nil)
	f.repo.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
	f.tokens.EXPECT().NewOpaqueToken().Return("new-plaintext", nil)
	f.tokens.EXPECT().HashToken("new-plaintext").Return("new-hash")
	f.tokens.EXPECT().GetRefreshTokenExpiry().Return(30 * 24 * time.Hour)
	f.repo.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(domain.UserRepository) error) error { return fn(f.repo) })
	f.repo.EXPECT().StoreRefreshToken(gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().MarkRefreshTokenRotated(gomock.Any(), "rt-old", gomock.Any()).Return(true, nil)
	f.tokens.EXPECT().SignAccessToken(user.ID, user.Email, user.Role).Return("signed-access-token", nil)
	f.tokens.EXPECT().GetAccessTokenExpiry().Return(15 * time.Minute)

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "old-plaintext"})

	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "signed-access-token", body["accessToken"])
	assert.NotContains(t, body, "user")

	cookie := refreshCookie(resp, "refresh_token")
	require.NotNil(t, cookie)
	assert.Equal(t, "new-plaintext", cookie.Value)
}

func TestRefresh_ReusedToken(t *testing.T) {
	f, ctrl := newHandlerFixture(t)
	defer ctrl.Finish()

	revokedAt := time.Now().Add(-time.Minute)
	existing := &domain.RefreshToken{
		ID:        "rt-old",
		UserID:    "user-id",
		TokenHash: "old-hash",
		ExpiresAt: time.Now().Add(time.Hour),
		RevokedAt: &revokedAt,
	}

	f.tokens.EXPECT().HashToken("old-plaintext").Return("old-hash")
	f.repo.EXPECT().GetRefreshTokenByHash(gomock.Any(), "old-hash").Return(existing, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "old-plaintext"})

	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "REFRESH_TOKEN_INVALID", errorCode(t, resp))
}

func TestLogout_ClearsCookie(t *testing.T) {
	f, ctrl := newHandlerFixture(t)
	defer ctrl.Finish()

	existing := &domain.RefreshToken{ID: "rt-1", TokenHash: "hash-1"}
	f.tokens.EXPECT().HashToken("plaintext").Return("hash-1")
	f.repo.EXPECT().GetRefreshTokenByHash(gomock.Any(), "hash-1").Return(existing, nil)
	f.repo.EXPECT().RevokeRefreshToken(gomock.Any(), "rt-1").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "plaintext"})

	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	cookie := refreshCookie(resp, "refresh_token")
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.Expires.Before(time.Now()))
}

func TestLogout_WithoutCookieIsNoContent(t *testing.T) {
	f, ctrl := newHandlerFixture(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestRequestPasswordReset_AlwaysAccepted(t *testing.T) {
	f, ctrl := newHandlerFixture(t)
	defer ctrl.Finish()

	t.Run("known email exposes a mock token", func(t *testing.T) {
		user := &domain.User{ID: "user-id", Email: "artist@example.com"}
		f.repo.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
		f.repo.EXPECT().InvalidatePasswordResetTokens(gomock.Any(), user.ID).Return(nil)
		f.tokens.EXPECT().NewOpaqueToken().Return("reset-plaintext", nil)
		f.tokens.EXPECT().HashToken("reset-plaintext").Return("reset-hash")
		f.repo.EXPECT().CreatePasswordResetToken(gomock.Any(), gomock.Any()).Return(nil)

		resp := postJSON(t, f.app, "/auth/password/request-reset", fiber.Map{"email": user.Email})

		assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, true, body["requested"])
		assert.Equal(t, "reset-plaintext", body["mockResetToken"])
	})

	t.Run("unknown email is indistinguishable by status", func(t *testing.T) {
		f.repo.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, nil)

		resp := postJSON(t, f.app, "/auth/password/request-reset", fiber.Map{"email": "ghost@example.com"})

		assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, false, body["requested"])
		assert.Nil(t, body["mockResetToken"])
	})
}

func TestResetPassword(t *testing.T) {
	f, ctrl := newHandlerFixture(t)
	defer ctrl.Finish()

	t.Run("invalid token", func(t *testing.T) {
		f.tokens.EXPECT().HashToken("bad-token").Return("bad-hash")
		f.repo.EXPECT().GetValidPasswordResetToken(gomock.Any(), "bad-hash").Return(nil, nil)

		resp := postJSON(t, f.app, "/auth/password/reset", fiber.Map{
			"token":       "bad-token",
			"newPassword": "newpassword123",
		})

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "RESET_TOKEN_INVALID", errorCode(t, resp))
	})

	t.Run("success", func(t *testing.T) {
		record := &domain.OneTimeToken{ID: "prt-1", UserID: "user-id"}
		user := &domain.User{ID: "user-id", Email: "artist@example.com"}

		f.tokens.EXPECT().HashToken("reset-plaintext").Return("reset-hash")
		f.repo.EXPECT().GetValidPasswordResetToken(gomock.Any(), "reset-hash").Return(record, nil)
		f.repo.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
		f.repo.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fn func(domain.UserRepository) error) error { return fn(f.repo) })
		f.repo.EXPECT().UpdatePassword(gomock.Any(), user.ID, gomock.Any()).Return(nil)
		f.repo.EXPECT().RevokeAllRefreshTokensByUserID(gomock.Any(), user.ID).Return(nil)
		f.repo.EXPECT().MarkPasswordResetTokenUsed(gomock.Any(), record.ID).Return(nil)

		resp := postJSON(t, f.app, "/auth/password/reset", fiber.Map{
			"token":       "reset-plaintext",
			"newPassword": "newpassword123",
		})

		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	})
}

func TestRequestEmailVerification_RequiresAuth(t *testing.T) {
	f, ctrl := newHandlerFixture(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodPost, "/auth/verify-email/request", nil)
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, resp))
}

func TestRequestEmailVerification_Success(t *testing.T) {
	f, ctrl := newHandlerFixture(t)
	defer ctrl.Finish()

	user := &domain.User{ID: "user-id", Email: "artist@example.com"}
	claims := &service.JWTCustomClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: user.ID}}

	f.tokens.EXPECT().VerifyAccessToken("valid-access-token").Return(claims, nil)
	f.repo.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
	f.repo.EXPECT().InvalidateEmailVerificationTokens(gomock.Any(), user.ID).Return(nil)
	f.tokens.EXPECT().NewOpaqueToken().Return("verify-plaintext", nil)
	f.tokens.EXPECT().HashToken("verify-plaintext").Return("verify-hash")
	f.repo.EXPECT().CreateEmailVerificationToken(gomock.Any(), gomock.Any()).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/verify-email/request", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer valid-access-token")

	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, false, body["alreadyVerified"])
	assert.Equal(t, "verify-plaintext", body["mockVerificationToken"])
}

func TestConfirmEmailVerification_InvalidToken(t *testing.T) {
	f, ctrl := newHandlerFixture(t)
	defer ctrl.Finish()

	f.tokens.EXPECT().HashToken("bad-token").Return("bad-hash")
	f.repo.EXPECT().GetValidEmailVerificationToken(gomock.Any(), "bad-hash").Return(nil, nil)

	resp := postJSON(t, f.app, "/auth/verify-email/confirm", fiber.Map{"token": "bad-token"})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VERIFICATION_TOKEN_INVALID", errorCode(t, resp))
}

func TestMe(t *testing.T) {
	f, ctrl := newHandlerFixture(t)
	defer ctrl.Finish()

	t.Run("without token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		resp, err := f.app.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("with a bad token", func(t *testing.T) {
		f.tokens.EXPECT().VerifyAccessToken("bad-token").Return(nil, errors.New("token is expired"))

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer bad-token")

		resp, err := f.app.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "UNAUTHORIZED", errorCode(t, resp))
	})

	t.Run("with a valid token", func(t *testing.T) {
		user := &domain.User{ID: "user-id", Email: "artist@example.com", Role: "artist"}
		claims := &service.JWTCustomClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: user.ID}}

		f.tokens.EXPECT().VerifyAccessToken("valid-access-token").Return(claims, nil)
		f.repo.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer valid-access-token")

		resp, err := f.app.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, user.Email, body["email"])
	})
}

func TestUnexpectedErrorIsOpaque500(t *testing.T) {
	f, ctrl := newHandlerFixture(t)
	defer ctrl.Finish()

	f.repo.EXPECT().GetByEmail(gomock.Any(), "artist@example.com").
		Return(nil, errors.New("connection refused"))

	resp := postJSON(t, f.app, "/auth/login", fiber.Map{
		"email":    "artist@example.com",
		"password": "password123",
	})

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "INTERNAL_SERVER_ERROR")
	// The underlying failure must not leak to the client.
	assert.NotContains(t, string(raw), "connection refused")
}
