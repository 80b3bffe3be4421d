package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/dcsil/k.ai/internal/auth/domain UserRepository

import (
	"context"
	"time"
)

// UserRepository is the persistence authority for everything the session
// service touches. The relational store is the only serialization point;
// multi-step mutations run inside WithTx.
type UserRepository interface {
	// WithTx runs fn against a repository bound to a single transaction.
	// fn returning an error rolls the transaction back.
	WithTx(ctx context.Context, fn func(UserRepository) error) error

	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	SetLoginFailureState(ctx context.Context, userID string, failedCount int, lockedUntil *time.Time) error
	ClearLoginFailureState(ctx context.Context, userID string) error
	MarkEmailVerified(ctx context.Context, userID string, at time.Time) error

	StoreRefreshToken(ctx context.Context, rt *RefreshToken) error
	GetRefreshTokenByHash(ctx context.Context, tokenHash string) (*RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, id string) error
	// MarkRefreshTokenRotated revokes the old token and links its successor in
	// one guarded update. It reports false when the token was already revoked,
	// which is how a lost rotation race surfaces.
	MarkRefreshTokenRotated(ctx context.Context, oldID, newID string) (bool, error)
	RevokeAllRefreshTokensByUserID(ctx context.Context, userID string) error

	RecordLoginAttempt(ctx context.Context, attempt *LoginAttempt) error

	CreatePasswordResetToken(ctx context.Context, token *OneTimeToken) error
	GetValidPasswordResetToken(ctx context.Context, tokenHash string) (*OneTimeToken, error)
	InvalidatePasswordResetTokens(ctx context.Context, userID string) error
	MarkPasswordResetTokenUsed(ctx context.Context, id string) error

	CreateEmailVerificationToken(ctx context.Context, token *OneTimeToken) error
	GetValidEmailVerificationToken(ctx context.Context, tokenHash string) (*OneTimeToken, error)
	InvalidateEmailVerificationTokens(ctx context.Context, userID string) error
	MarkEmailVerificationTokenUsed(ctx context.Context, id string) error
}
