package service

import (
	"context"
	"strings"
	"time"

	"github.com/dcsil/k.ai/config"
	"github.com/dcsil/k.ai/internal/auth/domain"
	"github.com/dcsil/k.ai/internal/auth/dto"
	autherror "github.com/dcsil/k.ai/internal/errors"
	"github.com/dcsil/k.ai/pkg/constant"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionService orchestrates the whole session lifecycle: signup, login with
// lockout, refresh rotation, logout, password reset and email verification.
// It owns every state transition of refresh and one-time token rows; all
// durable state lives in the repository.
type SessionService struct {
	repo   domain.UserRepository
	tokens TokenGenerator
	cfg    *config.Config
	log    *zap.Logger
}

func NewSessionService(repo domain.UserRepository, tokens TokenGenerator, cfg *config.Config, log *zap.Logger) *SessionService {
	return &SessionService{
		repo:   repo,
		tokens: tokens,
		cfg:    cfg,
		log:    log,
	}
}

// normalizeEmail makes email comparison case-insensitive at the service edge.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *SessionService) newSession(user *domain.User, refreshToken string, refreshExpiresAt time.Time) (*dto.Session, error) {
	accessToken, err := s.tokens.SignAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.Session{
		User:                  user,
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  int(s.tokens.GetAccessTokenExpiry().Seconds()),
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExpiresAt,
	}, nil
}

// mintRefreshToken generates a fresh opaque secret and the row that stores
// only its hash. The plaintext is returned once and never persisted.
func (s *SessionService) mintRefreshToken(userID string, rctx dto.RequestContext) (string, *domain.RefreshToken, error) {
	plaintext, err := s.tokens.NewOpaqueToken()
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	rt := &domain.RefreshToken{
		ID:          uuid.NewString(),
		UserID:      userID,
		TokenHash:   s.tokens.HashToken(plaintext),
		CreatedByIP: rctx.IP,
		UserAgent:   rctx.UserAgent,
		ExpiresAt:   now.Add(s.tokens.GetRefreshTokenExpiry()),
		CreatedAt:   now,
	}

	return plaintext, rt, nil
}

// recordAttempt appends to the login audit trail. Best effort: a failed audit
// write never fails the login flow itself.
func (s *SessionService) recordAttempt(ctx context.Context, userID *string, success bool, reason, ip string) {
	attempt := &domain.LoginAttempt{
		ID:        uuid.NewString(),
		UserID:    userID,
		Success:   success,
		Reason:    reason,
		IP:        ip,
		CreatedAt: time.Now(),
	}
	if err := s.repo.RecordLoginAttempt(ctx, attempt); err != nil {
		s.log.Warn("failed to record login attempt", zap.Error(err))
	}
}

// SignUp creates the user and its first refresh token in one transaction; a
// crash cannot leave a user without a session row.
func (s *SessionService) SignUp(ctx context.Context, input dto.SignupInput, rctx dto.RequestContext) (*dto.Session, error) {
	email := normalizeEmail(input.Email)

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailExists
	}

	passwordHash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		DisplayName:  input.DisplayName,
		Timezone:     input.Timezone,
		Role:         constant.DefaultUserRole,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	plaintext, rt, err := s.mintRefreshToken(user.ID, rctx)
	if err != nil {
		return nil, err
	}

	err = s.repo.WithTx(ctx, func(r domain.UserRepository) error {
		if err := r.Create(ctx, user); err != nil {
			return err
		}
		return r.StoreRefreshToken(ctx, rt)
	})
	if err != nil {
		return nil, err
	}

	return s.newSession(user, plaintext, rt.ExpiresAt)
}

// Login authenticates credentials, enforcing the lockout policy. The response
// shape for "no such user" and "wrong password" is deliberately identical.
func (s *SessionService) Login(ctx context.Context, input dto.LoginInput, rctx dto.RequestContext) (*dto.Session, error) {
	email := normalizeEmail(input.Email)

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.recordAttempt(ctx, nil, false, constant.AttemptReasonUserNotFound, rctx.IP)
		return nil, autherror.ErrInvalidCredentials
	}

	now := time.Now()
	if user.Locked(now) {
		retryAfter := int(time.Until(*user.LockedUntil).Seconds()) + 1
		return nil, autherror.AccountLocked(retryAfter)
	}

	if user.PasswordHash == "" {
		return nil, autherror.ErrPasswordNotSet
	}

	if !VerifyPassword(input.Password, user.PasswordHash) {
		return nil, s.handleFailedPassword(ctx, user, rctx)
	}

	if err := s.repo.ClearLoginFailureState(ctx, user.ID); err != nil {
		return nil, err
	}
	user.FailedLoginCount = 0
	user.LockedUntil = nil

	s.recordAttempt(ctx, &user.ID, true, "", rctx.IP)

	plaintext, rt, err := s.mintRefreshToken(user.ID, rctx)
	if err != nil {
		return nil, err
	}
	if err := s.repo.StoreRefreshToken(ctx, rt); err != nil {
		return nil, err
	}

	return s.newSession(user, plaintext, rt.ExpiresAt)
}

// handleFailedPassword increments the failure counter and arms the lockout
// window once the counter reaches the configured maximum. The caller always
// sees INVALID_CREDENTIALS; the lock only reveals itself on the next attempt.
func (s *SessionService) handleFailedPassword(ctx context.Context, user *domain.User, rctx dto.RequestContext) error {
	failed := user.FailedLoginCount + 1
	reason := constant.AttemptReasonBadPassword

	var lockedUntil *time.Time
	if failed >= s.cfg.MaxLoginAttempts {
		until := time.Now().Add(s.cfg.LockoutDuration)
		lockedUntil = &until
		failed = 0
		reason = constant.AttemptReasonLocked
	}

	if err := s.repo.SetLoginFailureState(ctx, user.ID, failed, lockedUntil); err != nil {
		return err
	}

	s.recordAttempt(ctx, &user.ID, false, reason, rctx.IP)

	return autherror.ErrInvalidCredentials
}

// Refresh rotates a refresh token: the presented token is revoked and exactly
// one successor is linked in its place. The guarded rotation update is the
// serialization point — redeeming the same token twice always fails the
// second time, which doubles as theft detection.
func (s *SessionService) Refresh(ctx context.Context, refreshToken string, rctx dto.RequestContext) (*dto.Session, error) {
	if refreshToken == "" {
		return nil, autherror.ErrRefreshTokenMissing
	}

	existing, err := s.repo.GetRefreshTokenByHash(ctx, s.tokens.HashToken(refreshToken))
	if err != nil {
		return nil, err
	}
	if existing == nil || existing.RevokedAt != nil {
		return nil, autherror.ErrRefreshTokenInvalid
	}

	if !existing.ExpiresAt.After(time.Now()) {
		if err := s.repo.RevokeRefreshToken(ctx, existing.ID); err != nil {
			s.log.Warn("failed to revoke expired refresh token", zap.String("token_id", existing.ID), zap.Error(err))
		}
		return nil, autherror.ErrRefreshTokenExpired
	}

	user, err := s.repo.GetByID(ctx, existing.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		if err := s.repo.RevokeRefreshToken(ctx, existing.ID); err != nil {
			s.log.Warn("failed to revoke orphaned refresh token", zap.String("token_id", existing.ID), zap.Error(err))
		}
		return nil, autherror.ErrRefreshTokenInvalid
	}

	plaintext, successor, err := s.mintRefreshToken(user.ID, rctx)
	if err != nil {
		return nil, err
	}

	err = s.repo.WithTx(ctx, func(r domain.UserRepository) error {
		if err := r.StoreRefreshToken(ctx, successor); err != nil {
			return err
		}

		rotated, err := r.MarkRefreshTokenRotated(ctx, existing.ID, successor.ID)
		if err != nil {
			return err
		}
		if !rotated {
			// A concurrent request won the rotation; roll back our successor.
			return autherror.ErrRefreshTokenInvalid
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.newSession(user, plaintext, successor.ExpiresAt)
}

// Logout revokes the presented refresh token. Missing, unknown and
// already-revoked tokens are all fine: logout is idempotent and never errors
// for the client's sake.
func (s *SessionService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	existing, err := s.repo.GetRefreshTokenByHash(ctx, s.tokens.HashToken(refreshToken))
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}

	return s.repo.RevokeRefreshToken(ctx, existing.ID)
}

// RequestPasswordReset issues a fresh single-use reset token, invalidating any
// still-active predecessors. An unknown email reports requested=false without
// an error so the endpoint never leaks account existence.
func (s *SessionService) RequestPasswordReset(ctx context.Context, email string) (bool, string, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return false, "", err
	}
	if user == nil {
		return false, "", nil
	}

	if err := s.repo.InvalidatePasswordResetTokens(ctx, user.ID); err != nil {
		return false, "", err
	}

	plaintext, err := s.tokens.NewOpaqueToken()
	if err != nil {
		return false, "", err
	}

	now := time.Now()
	token := &domain.OneTimeToken{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		TokenHash: s.tokens.HashToken(plaintext),
		ExpiresAt: now.Add(s.cfg.PasswordResetTTL),
		CreatedAt: now,
	}
	if err := s.repo.CreatePasswordResetToken(ctx, token); err != nil {
		return false, "", err
	}

	return true, plaintext, nil
}

// ResetPassword exchanges a valid reset token for a new password. The update,
// the mass refresh-token revocation (force re-login everywhere) and the token
// consumption commit atomically.
func (s *SessionService) ResetPassword(ctx context.Context, token, newPassword string) error {
	record, err := s.repo.GetValidPasswordResetToken(ctx, s.tokens.HashToken(token))
	if err != nil {
		return err
	}
	if record == nil {
		return autherror.ErrResetTokenInvalid
	}

	user, err := s.repo.GetByID(ctx, record.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrResetTokenInvalid
	}

	passwordHash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.repo.WithTx(ctx, func(r domain.UserRepository) error {
		if err := r.UpdatePassword(ctx, user.ID, passwordHash); err != nil {
			return err
		}
		if err := r.RevokeAllRefreshTokensByUserID(ctx, user.ID); err != nil {
			return err
		}
		return r.MarkPasswordResetTokenUsed(ctx, record.ID)
	})
}

// RequestEmailVerification issues a verification token for an unverified
// account. Already-verified accounts get alreadyVerified=true and no token.
func (s *SessionService) RequestEmailVerification(ctx context.Context, userID string) (bool, string, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return false, "", err
	}
	if user == nil {
		return false, "", autherror.ErrUserNotFound
	}

	if user.EmailVerifiedAt != nil {
		return true, "", nil
	}

	if err := s.repo.InvalidateEmailVerificationTokens(ctx, user.ID); err != nil {
		return false, "", err
	}

	plaintext, err := s.tokens.NewOpaqueToken()
	if err != nil {
		return false, "", err
	}

	now := time.Now()
	token := &domain.OneTimeToken{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		TokenHash: s.tokens.HashToken(plaintext),
		ExpiresAt: now.Add(s.cfg.EmailVerificationTTL),
		CreatedAt: now,
	}
	if err := s.repo.CreateEmailVerificationToken(ctx, token); err != nil {
		return false, "", err
	}

	return false, plaintext, nil
}

// ConfirmEmailVerification consumes a verification token and stamps the user
// as verified, atomically.
func (s *SessionService) ConfirmEmailVerification(ctx context.Context, token string) error {
	record, err := s.repo.GetValidEmailVerificationToken(ctx, s.tokens.HashToken(token))
	if err != nil {
		return err
	}
	if record == nil {
		return autherror.ErrVerificationTokenInvalid
	}

	user, err := s.repo.GetByID(ctx, record.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}

	return s.repo.WithTx(ctx, func(r domain.UserRepository) error {
		if err := r.MarkEmailVerified(ctx, user.ID, time.Now()); err != nil {
			return err
		}
		return r.MarkEmailVerificationTokenUsed(ctx, record.ID)
	})
}

// GetUser loads the user backing an access token's subject claim.
func (s *SessionService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}
	return user, nil
}
