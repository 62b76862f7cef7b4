package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"devsnap_backend/internal/feature/auth/domain/entity"
	"devsnap_backend/internal/feature/auth/usecase"
)

// verificationTokenPostgres is a GORM implementation of the
// VerificationTokenRepository interface.
type verificationTokenPostgres struct {
	db *gorm.DB
}

// Compile-time check to ensure verificationTokenPostgres implements VerificationTokenRepository.
var _ usecase.VerificationTokenRepository = (*verificationTokenPostgres)(nil)

// NewVerificationTokenPostgres creates a new instance of verificationTokenPostgres.
func NewVerificationTokenPostgres(db *gorm.DB) *verificationTokenPostgres {
	return &verificationTokenPostgres{db: db}
}

// Create persists a new verification token.
func (r *verificationTokenPostgres) Create(ctx context.Context, token *entity.VerificationToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

// Consume deletes the token if it matches and has not expired. The conditional
// DELETE is a single statement, so at most one of any number of concurrent
// submissions of the same pair can succeed. Only when the delete touched no
// row is a follow-up read used to distinguish an expired token from a missing
// one; both of those outcomes are failures, so the extra read cannot race a
// second consumer into success.
func (r *verificationTokenPostgres) Consume(ctx context.Context, identifier, token string, now time.Time) error {
	result := r.db.WithContext(ctx).
		Where("identifier = ? AND token = ? AND expires > ?", identifier, token, now).
		Delete(&entity.VerificationToken{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var existing entity.VerificationToken
	err := r.db.WithContext(ctx).
		Where("identifier = ? AND token = ?", identifier, token).
		First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecase.ErrTokenNotFound
		}
		return err
	}
	// The row exists but the conditional delete skipped it: it has expired.
	// Expired tokens are left in place until DeleteExpired sweeps them.
	return usecase.ErrTokenExpired
}

// DeleteExpired removes all expired tokens from storage.
func (r *verificationTokenPostgres) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires < ?", time.Now()).
		Delete(&entity.VerificationToken{})
	return result.RowsAffected, result.Error
}
