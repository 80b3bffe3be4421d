package domain

import "time"

type User struct {
	ID               string
	Email            string
	PasswordHash     string // empty for accounts without password login
	DisplayName      string
	Timezone         string
	Role             string
	EmailVerifiedAt  *time.Time
	FailedLoginCount int
	LockedUntil      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Locked reports whether a lockout window is still open at the given instant.
func (u *User) Locked(now time.Time) bool {
	return u.LockedUntil != nil && u.LockedUntil.After(now)
}

// RefreshToken is one issued refresh credential. Only the SHA-256 hash of the
// opaque secret is ever stored. Rotation links tokens into a singly-linked
// chain via ReplacedByID; rows are never deleted so reuse stays detectable.
type RefreshToken struct {
	ID           string
	UserID       string
	TokenHash    string
	CreatedByIP  string
	UserAgent    string
	ExpiresAt    time.Time
	CreatedAt    time.Time
	RevokedAt    *time.Time
	ReplacedByID *string
}

// Active reports whether the token is still usable: not revoked and not expired.
func (rt *RefreshToken) Active(now time.Time) bool {
	return rt.RevokedAt == nil && rt.ExpiresAt.After(now)
}

// OneTimeToken is a single-use, time-boxed secret backing the password-reset
// and email-verification flows. Valid while UsedAt is nil and ExpiresAt is in
// the future.
type OneTimeToken struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	UsedAt    *time.Time
}

// LoginAttempt is an append-only audit record. UserID is nil when the
// presented email matched no account.
type LoginAttempt struct {
	ID        string
	UserID    *string
	Success   bool
	Reason    string
	IP        string
	CreatedAt time.Time
}
