package usecase

import (
	"context"

	"devsnap_backend/internal/feature/snapshots/domain/entity"
)

// SnapshotRepository abstracts the persistence layer for snapshot entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SnapshotRepository interface {
	// Create persists a new snapshot.
	Create(ctx context.Context, snapshot *entity.Snapshot) error

	// FindByID retrieves a snapshot by ID, or ErrSnapshotNotFound.
	FindByID(ctx context.Context, id string) (*entity.Snapshot, error)

	// ListByOwner retrieves all snapshots owned by the user, most recent
	// first. An owner with no snapshots yields an empty slice, not an error.
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Snapshot, error)

	// UpdateMetadata updates name and/or description. Nil fields are left
	// unchanged. The captured sections are immutable and cannot be updated.
	UpdateMetadata(ctx context.Context, id string, name, description *string) error

	// Delete removes the snapshot together with every share link that
	// references it. Deleting an absent ID is a no-op, not an error.
	Delete(ctx context.Context, id string) error

	// CountByOwner returns the number of snapshots owned by the user.
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
}

// OwnerChecker reports whether a user exists. It decouples the snapshots
// feature from the auth feature's repository.
type OwnerChecker interface {
	OwnerExists(ctx context.Context, userID string) (bool, error)
}
