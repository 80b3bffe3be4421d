package dto

import (
	"time"

	"github.com/dcsil/k.ai/internal/auth/domain"
)

// RequestContext carries caller metadata extracted at the HTTP boundary for
// auditing and refresh-token provenance.
type RequestContext struct {
	IP        string
	UserAgent string
}

// Session is the bundle produced by signup, login and refresh. The refresh
// token plaintext appears here exactly once; the HTTP layer moves it into an
// HttpOnly cookie and never into a response body.
type Session struct {
	User                  *domain.User
	AccessToken           string
	AccessTokenExpiresIn  int // seconds
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
}

// SessionResponse is the JSON body returned for signup/login/refresh.
type SessionResponse struct {
	User                 *UserOutput `json:"user,omitempty"`
	AccessToken          string      `json:"accessToken"`
	AccessTokenExpiresIn int         `json:"accessTokenExpiresIn"`
	TokenType            string      `json:"tokenType"`
}
