package errors

import "net/http"

// Error is a domain error that already knows how it must appear on the wire:
// an HTTP status, a stable machine-readable code, and optional details. The
// session service returns these; the HTTP layer maps them exactly once.
type Error struct {
	Status  int
	Code    string
	Message string
	Details map[string]any
}

func (e *Error) Error() string {
	return e.Message
}

func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

var (
	ErrEmailExists        = New(http.StatusConflict, "EMAIL_EXISTS", "An account with that email already exists")
	ErrInvalidCredentials = New(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
	ErrPasswordNotSet     = New(http.StatusBadRequest, "PASSWORD_NOT_SET", "Password login is not available for this account")

	ErrRefreshTokenMissing = New(http.StatusUnauthorized, "REFRESH_TOKEN_MISSING", "Refresh token cookie is missing")
	ErrRefreshTokenInvalid = New(http.StatusUnauthorized, "REFRESH_TOKEN_INVALID", "Refresh token is invalid or revoked")
	ErrRefreshTokenExpired = New(http.StatusUnauthorized, "REFRESH_TOKEN_EXPIRED", "Refresh token has expired")

	ErrResetTokenInvalid        = New(http.StatusBadRequest, "RESET_TOKEN_INVALID", "Password reset token is invalid or expired")
	ErrVerificationTokenInvalid = New(http.StatusBadRequest, "VERIFICATION_TOKEN_INVALID", "Verification token is invalid or expired")

	ErrUserNotFound = New(http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	ErrUnauthorized = New(http.StatusUnauthorized, "UNAUTHORIZED", "Authorization header with Bearer token is required")
)

// AccountLocked builds the 423 returned while a lockout window is open. The
// retry-after hint travels in Details so the HTTP layer can also set the
// Retry-After header.
func AccountLocked(retryAfterSeconds int) *Error {
	return &Error{
		Status:  http.StatusLocked,
		Code:    "ACCOUNT_LOCKED",
		Message: "Account is temporarily locked due to failed logins",
		Details: map[string]any{"retryAfterSeconds": retryAfterSeconds},
	}
}

// Validation wraps per-field validation failures as a 422.
func Validation(details map[string]any) *Error {
	return &Error{
		Status:  http.StatusUnprocessableEntity,
		Code:    "VALIDATION_ERROR",
		Message: "Request validation failed",
		Details: details,
	}
}
