// Package usecase implements the business logic for the snapshots feature.
package usecase

import "errors"

var (
	// ErrSnapshotNotFound is returned when no snapshot matches the given ID.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrOwnerNotFound is returned when a capture is submitted for a user that does not exist.
	ErrOwnerNotFound = errors.New("owner not found")

	// ErrInvalidSnapshot is returned when a capture payload is missing required fields.
	ErrInvalidSnapshot = errors.New("invalid snapshot payload")

	// ErrNotOwner is returned when the caller does not own the snapshot.
	ErrNotOwner = errors.New("caller does not own this snapshot")
)
