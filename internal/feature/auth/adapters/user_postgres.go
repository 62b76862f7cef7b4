// Package adapters provides repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"devsnap_backend/internal/feature/auth/domain/entity"
	"devsnap_backend/internal/feature/auth/usecase"
)

// userPostgres is a GORM implementation of the UserRepository interface.
// The connection must be opened with TranslateError so unique-constraint
// violations surface as gorm.ErrDuplicatedKey.
type userPostgres struct {
	db *gorm.DB
}

// Compile-time check to ensure userPostgres implements UserRepository.
var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserPostgres creates a new instance of userPostgres.
func NewUserPostgres(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// Create persists a new user to the database.
// It returns usecase.ErrEmailAlreadyExists on a duplicate email.
func (r *userPostgres) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByID retrieves a user by ID.
// It returns usecase.ErrUserNotFound if the user does not exist.
func (r *userPostgres) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByEmail retrieves a user by email address.
// It returns usecase.ErrUserNotFound if the user does not exist.
func (r *userPostgres) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// UpdateProfile updates the display name and/or avatar image. Nil fields are
// left unchanged. It returns usecase.ErrUserNotFound if the user does not exist.
func (r *userPostgres) UpdateProfile(ctx context.Context, id string, name, image *string) error {
	updates := map[string]any{}
	if name != nil {
		updates["name"] = *name
	}
	if image != nil {
		updates["image"] = *image
	}
	if len(updates) == 0 {
		_, err := r.FindByID(ctx, id)
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}

// UpdatePlan changes the user's subscription plan.
func (r *userPostgres) UpdatePlan(ctx context.Context, id string, plan entity.Plan) error {
	result := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", id).
		Update("plan", plan)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}

// MarkEmailVerified stamps the email-verified time.
func (r *userPostgres) MarkEmailVerified(ctx context.Context, id string, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", id).
		Update("email_verified", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}

// Delete removes the user and cascades deletion of all owned snapshots and,
// through them, their share links. The three deletes run in one transaction so
// a failure leaves the account intact.
func (r *userPostgres) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"DELETE FROM share_links WHERE snapshot_id IN (SELECT id FROM snapshots WHERE user_id = ?)", id,
		).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM snapshots WHERE user_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&entity.User{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return usecase.ErrUserNotFound
		}
		return nil
	})
}
