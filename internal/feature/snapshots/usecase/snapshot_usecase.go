package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"devsnap_backend/internal/feature/snapshots/domain/entity"
)

// CaptureInput is the payload submitted by the capture CLI.
type CaptureInput struct {
	Name        string
	Description string
	OSData      *entity.OSData
	EditorData  *entity.EditorData
	ShellData   *entity.ShellData
	GitData     *entity.GitData
	Runtimes    entity.RuntimeList
	Packages    entity.PackageList
	CLIVersion  string
	CapturedAt  time.Time
}

// snapshotUsecase implements the snapshot store operations.
type snapshotUsecase struct {
	snapshots SnapshotRepository
	owners    OwnerChecker
}

// NewSnapshotUsecase creates a new instance of snapshotUsecase.
func NewSnapshotUsecase(snapshots SnapshotRepository, owners OwnerChecker) *snapshotUsecase {
	return &snapshotUsecase{
		snapshots: snapshots,
		owners:    owners,
	}
}

// SubmitCapture validates the payload and persists it as a new snapshot owned
// by ownerID. The captured sections are immutable from this point on.
func (u *snapshotUsecase) SubmitCapture(ctx context.Context, ownerID string, in CaptureInput) (*entity.Snapshot, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidSnapshot)
	}
	if in.CapturedAt.IsZero() {
		return nil, fmt.Errorf("%w: capturedAt is required", ErrInvalidSnapshot)
	}

	exists, err := u.owners.OwnerExists(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check owner: %w", err)
	}
	if !exists {
		return nil, ErrOwnerNotFound
	}

	snapshot := &entity.Snapshot{
		ID:          uuid.NewString(),
		UserID:      ownerID,
		Name:        in.Name,
		Description: in.Description,
		OSData:      in.OSData,
		EditorData:  in.EditorData,
		ShellData:   in.ShellData,
		GitData:     in.GitData,
		Runtimes:    in.Runtimes,
		Packages:    in.Packages,
		CLIVersion:  in.CLIVersion,
		CapturedAt:  in.CapturedAt,
	}
	if err := u.snapshots.Create(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to create snapshot: %w", err)
	}
	return snapshot, nil
}

// Get returns a snapshot by ID. Only the owner may read it through this path;
// public access goes through the share-link resolver.
func (u *snapshotUsecase) Get(ctx context.Context, callerID, id string) (*entity.Snapshot, error) {
	snapshot, err := u.snapshots.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if snapshot.UserID != callerID {
		return nil, ErrNotOwner
	}
	return snapshot, nil
}

// List returns the caller's snapshots, most recent first.
func (u *snapshotUsecase) List(ctx context.Context, callerID string) ([]*entity.Snapshot, error) {
	return u.snapshots.ListByOwner(ctx, callerID)
}

// UpdateMetadata edits name and/or description of an owned snapshot and
// returns the updated record. Captured sections cannot be changed.
func (u *snapshotUsecase) UpdateMetadata(ctx context.Context, callerID, id string, name, description *string) (*entity.Snapshot, error) {
	snapshot, err := u.snapshots.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if snapshot.UserID != callerID {
		return nil, ErrNotOwner
	}
	if name != nil && strings.TrimSpace(*name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidSnapshot)
	}
	if err := u.snapshots.UpdateMetadata(ctx, id, name, description); err != nil {
		return nil, err
	}
	return u.snapshots.FindByID(ctx, id)
}

// Delete removes an owned snapshot and all of its share links. Deleting a
// snapshot that no longer exists is a no-op, matching the repository contract.
func (u *snapshotUsecase) Delete(ctx context.Context, callerID, id string) error {
	snapshot, err := u.snapshots.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSnapshotNotFound) {
			return nil
		}
		return err
	}
	if snapshot.UserID != callerID {
		return ErrNotOwner
	}
	return u.snapshots.Delete(ctx, id)
}

// CountByOwner returns the number of snapshots the user owns.
func (u *snapshotUsecase) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	return u.snapshots.CountByOwner(ctx, ownerID)
}
