package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"devsnap_backend/internal/feature/sharelinks/domain/entity"
	snapentity "devsnap_backend/internal/feature/snapshots/domain/entity"
	snapusecase "devsnap_backend/internal/feature/snapshots/usecase"
)

// CreateInput describes a new share link.
type CreateInput struct {
	// Visibility defaults to public when empty.
	Visibility string
	// Password is required for private links and optional otherwise. Only its
	// bcrypt hash is stored.
	Password string
	// ExpiresAt, when set, makes the link resolve as expired once passed.
	ExpiresAt *time.Time
}

// shareLinkUsecase implements share-link creation, resolution and deletion.
type shareLinkUsecase struct {
	links     ShareLinkRepository
	snapshots SnapshotReader
}

// NewShareLinkUsecase creates a new instance of shareLinkUsecase.
func NewShareLinkUsecase(links ShareLinkRepository, snapshots SnapshotReader) *shareLinkUsecase {
	return &shareLinkUsecase{
		links:     links,
		snapshots: snapshots,
	}
}

// Create makes a new slug-addressed link for an owned snapshot. Slug
// collisions are retried with a fresh random slug up to maxSlugAttempts; the
// storage uniqueness constraint is the source of truth for collisions.
func (u *shareLinkUsecase) Create(ctx context.Context, callerID, snapshotID string, in CreateInput) (*entity.ShareLink, error) {
	snapshot, err := u.snapshots.FindByID(ctx, snapshotID)
	if err != nil {
		if errors.Is(err, snapusecase.ErrSnapshotNotFound) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to look up snapshot: %w", err)
	}
	if snapshot.UserID != callerID {
		return nil, ErrNotOwner
	}

	visibility := entity.Visibility(in.Visibility)
	if in.Visibility == "" {
		visibility = entity.VisibilityPublic
	}
	if !visibility.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVisibility, in.Visibility)
	}
	if visibility == entity.VisibilityPrivate && in.Password == "" {
		return nil, ErrPasswordMissing
	}

	var passwordHash string
	if in.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		passwordHash = string(hashed)
	}

	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		slug, err := newSlug()
		if err != nil {
			return nil, err
		}

		link := &entity.ShareLink{
			ID:           uuid.NewString(),
			SnapshotID:   snapshotID,
			Slug:         slug,
			Visibility:   visibility,
			PasswordHash: passwordHash,
			ExpiresAt:    in.ExpiresAt,
		}
		err = u.links.Create(ctx, link)
		if err == nil {
			return link, nil
		}
		if !errors.Is(err, ErrDuplicateSlug) {
			return nil, fmt.Errorf("failed to create share link: %w", err)
		}
	}
	return nil, ErrSlugExhausted
}

// Resolve looks up a slug and evaluates its access policy. The checks run in
// a fixed order: existence, expiry, password, success. An expired link that is
// also password-gated reports expiry, and the view count is incremented only
// on success, so failed or probing attempts never inflate it.
func (u *shareLinkUsecase) Resolve(ctx context.Context, slug, password string) (*snapentity.Snapshot, *entity.ShareLink, error) {
	link, err := u.links.FindBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}

	if link.IsExpired(time.Now()) {
		return nil, nil, ErrLinkExpired
	}

	if link.PasswordGated() {
		if password == "" {
			return nil, nil, ErrPasswordRequired
		}
		if err := bcrypt.CompareHashAndPassword([]byte(link.PasswordHash), []byte(password)); err != nil {
			return nil, nil, ErrPasswordRequired
		}
	}

	snapshot, err := u.snapshots.FindByID(ctx, link.SnapshotID)
	if err != nil {
		if errors.Is(err, snapusecase.ErrSnapshotNotFound) {
			// Dangling link; the cascade should have removed it.
			return nil, nil, ErrLinkNotFound
		}
		return nil, nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	if err := u.links.IncrementViewCount(ctx, link.ID); err != nil {
		return nil, nil, fmt.Errorf("failed to record view: %w", err)
	}
	link.ViewCount++

	return snapshot, link, nil
}

// ListForSnapshot returns all links for an owned snapshot, newest first.
func (u *shareLinkUsecase) ListForSnapshot(ctx context.Context, callerID, snapshotID string) ([]*entity.ShareLink, error) {
	snapshot, err := u.snapshots.FindByID(ctx, snapshotID)
	if err != nil {
		if errors.Is(err, snapusecase.ErrSnapshotNotFound) {
			return nil, ErrSnapshotNotFound
		}
		return nil, err
	}
	if snapshot.UserID != callerID {
		return nil, ErrNotOwner
	}
	return u.links.ListBySnapshot(ctx, snapshotID)
}

// Delete removes an owned link. Deleting a link that no longer exists is a
// no-op, matching the snapshot delete convention.
func (u *shareLinkUsecase) Delete(ctx context.Context, callerID, id string) error {
	link, err := u.links.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrLinkNotFound) {
			return nil
		}
		return err
	}

	snapshot, err := u.snapshots.FindByID(ctx, link.SnapshotID)
	if err != nil && !errors.Is(err, snapusecase.ErrSnapshotNotFound) {
		return err
	}
	if snapshot != nil && snapshot.UserID != callerID {
		return ErrNotOwner
	}

	return u.links.Delete(ctx, id)
}

// CountByOwner returns the number of links on the user's snapshots.
func (u *shareLinkUsecase) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	return u.links.CountByOwner(ctx, ownerID)
}

// TotalViewsByOwner sums the views across the user's share links.
func (u *shareLinkUsecase) TotalViewsByOwner(ctx context.Context, ownerID string) (int64, error) {
	return u.links.TotalViewsByOwner(ctx, ownerID)
}
