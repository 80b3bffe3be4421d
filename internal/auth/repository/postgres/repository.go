package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dcsil/k.ai/internal/auth/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repository needs. pgx.Tx and pgxmock
// pools satisfy it too, which is what lets WithTx rebind the repository to a
// transaction and the tests run against a mock.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Repository struct {
	db DB
}

func NewRepository(db DB) *Repository {
	return &Repository{db: db}
}

// WithTx runs fn against a repository bound to one transaction. Rollback after
// a successful commit is a no-op, so the defer is safe on every path.
func (r *Repository) WithTx(ctx context.Context, fn func(domain.UserRepository) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(&Repository{db: tx}); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, COALESCE(password_hash, ''), COALESCE(display_name, ''), COALESCE(timezone, ''),
		       role, email_verified_at, failed_login_count, locked_until, created_at, updated_at
		FROM users
		WHERE lower(email) = lower($1)
		LIMIT 1;
	`

	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, email, COALESCE(password_hash, ''), COALESCE(display_name, ''), COALESCE(timezone, ''),
		       role, email_verified_at, failed_login_count, locked_until, created_at, updated_at
		FROM users
		WHERE id = $1
		LIMIT 1;
	`

	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *Repository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.DisplayName, &user.Timezone,
		&user.Role, &user.EmailVerifiedAt, &user.FailedLoginCount, &user.LockedUntil,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	return &user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, display_name, timezone, role,
		                   failed_login_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, user.ID, user.Email, user.PasswordHash, user.DisplayName, user.Timezone, user.Role,
		user.FailedLoginCount, user.CreatedAt, user.UpdatedAt)

	return err
}

// UpdatePassword also clears the lockout counters: a successful reset proves
// control of the account.
func (r *Repository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET password_hash = $2, failed_login_count = 0, locked_until = NULL, updated_at = now()
		WHERE id = $1
	`, userID, passwordHash)

	return err
}

func (r *Repository) SetLoginFailureState(ctx context.Context, userID string, failedCount int, lockedUntil *time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET failed_login_count = $2, locked_until = $3, updated_at = now()
		WHERE id = $1
	`, userID, failedCount, lockedUntil)

	return err
}

func (r *Repository) ClearLoginFailureState(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET failed_login_count = 0, locked_until = NULL, updated_at = now()
		WHERE id = $1
	`, userID)

	return err
}

func (r *Repository) MarkEmailVerified(ctx context.Context, userID string, at time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET email_verified_at = $2, updated_at = now()
		WHERE id = $1
	`, userID, at)

	return err
}

func (r *Repository) StoreRefreshToken(ctx context.Context, rt *domain.RefreshToken) error {
	query := `INSERT INTO refresh_tokens (id, user_id, token_hash, created_by_ip, user_agent, expires_at, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		rt.ID, rt.UserID, rt.TokenHash, rt.CreatedByIP, rt.UserAgent, rt.ExpiresAt, rt.CreatedAt)

	return err
}

func (r *Repository) GetRefreshTokenByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	query := `
		SELECT id, user_id, token_hash, COALESCE(created_by_ip, ''), COALESCE(user_agent, ''),
		       expires_at, created_at, revoked_at, replaced_by_id
		FROM refresh_tokens
		WHERE token_hash = $1
		LIMIT 1;
	`

	var rt domain.RefreshToken
	err := r.db.QueryRow(ctx, query, tokenHash).Scan(&rt.ID, &rt.UserID, &rt.TokenHash,
		&rt.CreatedByIP, &rt.UserAgent, &rt.ExpiresAt, &rt.CreatedAt, &rt.RevokedAt, &rt.ReplacedByID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	return &rt, nil
}

func (r *Repository) RevokeRefreshToken(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE refresh_tokens
		SET revoked_at = now()
		WHERE id = $1 AND revoked_at IS NULL
	`, id)

	return err
}

// MarkRefreshTokenRotated is the serialization point for rotation. The
// revoked_at guard makes the update first-writer-wins: a second redeemer of
// the same token touches zero rows and learns it lost.
func (r *Repository) MarkRefreshTokenRotated(ctx context.Context, oldID, newID string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE refresh_tokens
		SET revoked_at = now(), replaced_by_id = $2
		WHERE id = $1 AND revoked_at IS NULL
	`, oldID, newID)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func (r *Repository) RevokeAllRefreshTokensByUserID(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE refresh_tokens
		SET revoked_at = now()
		WHERE user_id = $1 AND revoked_at IS NULL
	`, userID)

	return err
}

func (r *Repository) RecordLoginAttempt(ctx context.Context, attempt *domain.LoginAttempt) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO login_attempts (id, user_id, success, reason, ip, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, attempt.ID, attempt.UserID, attempt.Success, attempt.Reason, attempt.IP, attempt.CreatedAt)

	return err
}

func (r *Repository) CreatePasswordResetToken(ctx context.Context, token *domain.OneTimeToken) error {
	return r.createOneTimeToken(ctx, "password_reset_tokens", token)
}

func (r *Repository) GetValidPasswordResetToken(ctx context.Context, tokenHash string) (*domain.OneTimeToken, error) {
	return r.getValidOneTimeToken(ctx, "password_reset_tokens", tokenHash)
}

func (r *Repository) InvalidatePasswordResetTokens(ctx context.Context, userID string) error {
	return r.invalidateOneTimeTokens(ctx, "password_reset_tokens", userID)
}

func (r *Repository) MarkPasswordResetTokenUsed(ctx context.Context, id string) error {
	return r.markOneTimeTokenUsed(ctx, "password_reset_tokens", id)
}

func (r *Repository) CreateEmailVerificationToken(ctx context.Context, token *domain.OneTimeToken) error {
	return r.createOneTimeToken(ctx, "email_verification_tokens", token)
}

func (r *Repository) GetValidEmailVerificationToken(ctx context.Context, tokenHash string) (*domain.OneTimeToken, error) {
	return r.getValidOneTimeToken(ctx, "email_verification_tokens", tokenHash)
}

func (r *Repository) InvalidateEmailVerificationTokens(ctx context.Context, userID string) error {
	return r.invalidateOneTimeTokens(ctx, "email_verification_tokens", userID)
}

func (r *Repository) MarkEmailVerificationTokenUsed(ctx context.Context, id string) error {
	return r.markOneTimeTokenUsed(ctx, "email_verification_tokens", id)
}

// The reset and verification tables share a shape, so the four operations are
// written once. The table name is interpolated from a fixed set, never from
// caller input.

func (r *Repository) createOneTimeToken(ctx context.Context, table string, token *domain.OneTimeToken) error {
	query := fmt.Sprintf(`INSERT INTO %s (id, user_id, token_hash, expires_at, created_at)
	          VALUES ($1, $2, $3, $4, $5)`, table)
	_, err := r.db.Exec(ctx, query, token.ID, token.UserID, token.TokenHash, token.ExpiresAt, token.CreatedAt)

	return err
}

func (r *Repository) getValidOneTimeToken(ctx context.Context, table, tokenHash string) (*domain.OneTimeToken, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, token_hash, expires_at, created_at, used_at
		FROM %s
		WHERE token_hash = $1 AND used_at IS NULL AND expires_at > now()
		LIMIT 1;
	`, table)

	var token domain.OneTimeToken
	err := r.db.QueryRow(ctx, query, tokenHash).Scan(&token.ID, &token.UserID, &token.TokenHash,
		&token.ExpiresAt, &token.CreatedAt, &token.UsedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get one-time token: %w", err)
	}

	return &token, nil
}

func (r *Repository) invalidateOneTimeTokens(ctx context.Context, table, userID string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET used_at = now()
		WHERE user_id = $1 AND used_at IS NULL
	`, table)
	_, err := r.db.Exec(ctx, query, userID)

	return err
}

func (r *Repository) markOneTimeTokenUsed(ctx context.Context, table, id string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET used_at = now()
		WHERE id = $1
	`, table)
	_, err := r.db.Exec(ctx, query, id)

	return err
}
