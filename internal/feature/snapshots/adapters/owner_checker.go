package adapters

import (
	"context"

	"gorm.io/gorm"

	"devsnap_backend/internal/feature/snapshots/usecase"
)

// ownerChecker answers owner-existence checks against the users table without
// importing the auth feature.
type ownerChecker struct {
	db *gorm.DB
}

// Compile-time check to ensure ownerChecker implements OwnerChecker.
var _ usecase.OwnerChecker = (*ownerChecker)(nil)

// NewOwnerChecker creates a new instance of ownerChecker.
func NewOwnerChecker(db *gorm.DB) *ownerChecker {
	return &ownerChecker{db: db}
}

// OwnerExists reports whether a user row with the given ID exists.
func (c *ownerChecker) OwnerExists(ctx context.Context, userID string) (bool, error) {
	var count int64
	err := c.db.WithContext(ctx).
		Table("users").
		Where("id = ?", userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
