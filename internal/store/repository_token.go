package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/models"
)

// tokenRepository is the PostgreSQL-backed implementation of
// [TokenRepository]. It keeps the server-side refresh token ledger used for
// rotation and revocation.
type tokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTokenRepository constructs a [TokenRepository] backed by the provided
// database connection and logger.
func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{
		db:     db,
		logger: logger,
	}
}

// Save records a freshly issued refresh token.
//
// Error handling:
//   - foreign_key_violation (23503) → [ErrUserNotFound].
//   - Execution failure → wrapped with [ErrExecutingStatement].
func (r *tokenRepository) Save(ctx context.Context, token models.RefreshToken) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, saveRefreshToken,
		token.JTI, token.UserID, token.IssuedAt, token.ExpiresAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "tokenRepository.Save").
			Int64("user_id", token.UserID).
			Msg("error executing query for saving refresh token")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrUserNotFound
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Get retrieves the ledger record of one refresh token by its identifier.
//
// Error handling:
//   - No matching row → [ErrRefreshTokenNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *tokenRepository) Get(ctx context.Context, jti string) (models.RefreshToken, error) {
	log := logger.FromContext(ctx)

	var token models.RefreshToken
	err := r.db.QueryRowContext(ctx, getRefreshToken, jti).Scan(
		&token.JTI,
		&token.UserID,
		&token.IssuedAt,
		&token.ExpiresAt,
		&token.RevokedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.RefreshToken{}, ErrRefreshTokenNotFound
		}
		log.Err(err).Str("func", "tokenRepository.Get").Msg("error: scanning error")
		return models.RefreshToken{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return token, nil
}

// Revoke marks one refresh token as no longer redeemable. Revoking an
// already revoked or unknown token reports [ErrRefreshTokenNotFound] so
// rotation can detect replays.
func (r *tokenRepository) Revoke(ctx context.Context, jti string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, revokeRefreshToken, jti)
	if err != nil {
		log.Err(err).Str("func", "tokenRepository.Revoke").Msg("error executing query for revoking refresh token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrRefreshTokenNotFound
	}

	return nil
}

// RevokeAllForUser revokes every live refresh token of one account. Used on
// password change and forced logout.
func (r *tokenRepository) RevokeAllForUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, revokeAllUserRefreshTokens, userID)
	if err != nil {
		log.Err(err).
			Str("func", "tokenRepository.RevokeAllForUser").
			Int64("user_id", userID).
			Msg("error executing query for revoking user refresh tokens")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteExpired removes ledger records whose expiry lies before the given
// instant and returns how many were removed.
func (r *tokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteExpiredRefreshTokens, before)
	if err != nil {
		log.Err(err).Str("func", "tokenRepository.DeleteExpired").Msg("error executing query for deleting expired refresh tokens")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	removed, _ := result.RowsAffected()

	return removed, nil
}
