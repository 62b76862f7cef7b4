package usecase

import (
	"context"
	"time"

	"devsnap_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns ErrEmailAlreadyExists if a user with the same email exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by ID, or ErrUserNotFound.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a user by email address, or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdateProfile updates the display name and/or avatar image.
	// Nil fields are left unchanged.
	UpdateProfile(ctx context.Context, id string, name, image *string) error

	// UpdatePlan changes the user's subscription plan.
	UpdatePlan(ctx context.Context, id string, plan entity.Plan) error

	// MarkEmailVerified stamps the email-verified time if not already set.
	MarkEmailVerified(ctx context.Context, id string, at time.Time) error

	// Delete removes the user together with all owned snapshots and,
	// transitively, those snapshots' share links.
	Delete(ctx context.Context, id string) error
}
