package usecase

import (
	"context"

	"devsnap_backend/internal/feature/sharelinks/domain/entity"
	snapentity "devsnap_backend/internal/feature/snapshots/domain/entity"
)

// ShareLinkRepository abstracts the persistence layer for share links.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ShareLinkRepository interface {
	// Create persists a new share link. It returns ErrDuplicateSlug when the
	// slug uniqueness constraint rejects the insert; the constraint is the
	// source of truth, there is no check-then-insert.
	Create(ctx context.Context, link *entity.ShareLink) error

	// FindBySlug retrieves a link by its public slug, or ErrLinkNotFound.
	FindBySlug(ctx context.Context, slug string) (*entity.ShareLink, error)

	// FindByID retrieves a link by ID, or ErrLinkNotFound.
	FindByID(ctx context.Context, id string) (*entity.ShareLink, error)

	// ListBySnapshot retrieves all links referencing the snapshot, newest first.
	ListBySnapshot(ctx context.Context, snapshotID string) ([]*entity.ShareLink, error)

	// IncrementViewCount adds exactly 1 to the link's view count with an
	// atomic storage-level increment, never read-modify-write.
	IncrementViewCount(ctx context.Context, id string) error

	// Delete removes the link. Deleting an absent ID is a no-op, not an error.
	Delete(ctx context.Context, id string) error

	// CountByOwner returns the number of links whose snapshots the user owns.
	CountByOwner(ctx context.Context, ownerID string) (int64, error)

	// TotalViewsByOwner sums the view counts of all links whose snapshots the
	// user owns.
	TotalViewsByOwner(ctx context.Context, ownerID string) (int64, error)
}

// SnapshotReader is the read side of the snapshot store the resolver needs.
// Wiring may hand in the caching decorator instead of the raw repository.
type SnapshotReader interface {
	FindByID(ctx context.Context, id string) (*snapentity.Snapshot, error)
}
