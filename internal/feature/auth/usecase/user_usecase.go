package usecase

import (
	"context"
	"fmt"

	"devsnap_backend/internal/feature/auth/domain/entity"
)

// userUsecase implements account-level operations for the authenticated user.
type userUsecase struct {
	users UserRepository
}

// NewUserUsecase creates a new instance of userUsecase.
func NewUserUsecase(users UserRepository) *userUsecase {
	return &userUsecase{users: users}
}

// GetProfile returns the user's account record.
func (u *userUsecase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	return u.users.FindByID(ctx, userID)
}

// UpdateProfile changes the display name and/or avatar image and returns the
// updated record. Nil fields are left unchanged.
func (u *userUsecase) UpdateProfile(ctx context.Context, userID string, name, image *string) (*entity.User, error) {
	if name != nil || image != nil {
		if err := u.users.UpdateProfile(ctx, userID, name, image); err != nil {
			return nil, err
		}
	}
	return u.users.FindByID(ctx, userID)
}

// ChangePlan moves the user to another subscription plan.
func (u *userUsecase) ChangePlan(ctx context.Context, userID string, plan string) error {
	p := entity.Plan(plan)
	if !p.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPlan, plan)
	}
	return u.users.UpdatePlan(ctx, userID, p)
}

// DeleteAccount removes the user and cascades deletion of all owned snapshots
// and their share links.
func (u *userUsecase) DeleteAccount(ctx context.Context, userID string) error {
	return u.users.Delete(ctx, userID)
}
