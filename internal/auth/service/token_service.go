package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/dcsil/k.ai/internal/auth/service TokenGenerator

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// opaqueTokenBytes gives 64 base64url characters, ≥256 bits of entropy.
const opaqueTokenBytes = 48

type TokenGenerator interface {
	SignAccessToken(userID, email, role string) (string, error)
	VerifyAccessToken(tokenString string) (*JWTCustomClaims, error)
	NewOpaqueToken() (string, error)
	HashToken(token string) string
	GetAccessTokenExpiry() time.Duration
	GetRefreshTokenExpiry() time.Duration
}

// TokenService signs short-lived stateless access tokens and mints the opaque
// secrets (refresh, password-reset, email-verification) that are stored only
// as SHA-256 hashes.
type TokenService struct {
	AccessTokenSecret  string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

func NewTokenService(accessSecret string, accessExpiry, refreshExpiry time.Duration) *TokenService {
	return &TokenService{
		AccessTokenSecret:  accessSecret,
		AccessTokenExpiry:  accessExpiry,
		RefreshTokenExpiry: refreshExpiry,
	}
}

func (ts *TokenService) SignAccessToken(userID, email, role string) (string, error) {
	if ts.AccessTokenSecret == "" {
		return "", fmt.Errorf("access token secret is not configured")
	}

	now := time.Now()
	claims := JWTCustomClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.AccessTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.AccessTokenSecret))
}

// VerifyAccessToken parses and validates the given access token string.
// Expired, malformed and badly signed tokens all fail here.
func (ts *TokenService) VerifyAccessToken(tokenString string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.AccessTokenSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// NewOpaqueToken returns a URL-safe random secret. Opaque tokens carry no
// structure; they are verified only by hash lookup against stored state.
func (ts *TokenService) NewOpaqueToken() (string, error) {
	buf := make([]byte, opaqueTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// HashToken is the deterministic one-way storage form of an opaque token, so
// a presented token can be looked up by hash equality via a unique index.
func (ts *TokenService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (ts *TokenService) GetAccessTokenExpiry() time.Duration {
	return ts.AccessTokenExpiry
}

func (ts *TokenService) GetRefreshTokenExpiry() time.Duration {
	return ts.RefreshTokenExpiry
}
