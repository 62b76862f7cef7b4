// Package usecase implements the business logic for the sharelinks feature.
package usecase

import "errors"

var (
	// ErrLinkNotFound is returned when no share link matches the given slug or ID.
	ErrLinkNotFound = errors.New("share link not found")

	// ErrSnapshotNotFound is returned when creating a link for a snapshot that does not exist.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrLinkExpired is returned when resolving a link whose expiry has passed.
	// The link itself is kept; every later resolution reports the same outcome.
	ErrLinkExpired = errors.New("share link has expired")

	// ErrPasswordRequired is returned when a password-gated link is resolved
	// with no password or a wrong one.
	ErrPasswordRequired = errors.New("password required")

	// ErrPasswordMissing is returned when creating a private link without a password.
	ErrPasswordMissing = errors.New("private links require a password")

	// ErrInvalidVisibility is returned when creating a link with an unknown visibility.
	ErrInvalidVisibility = errors.New("unknown visibility")

	// ErrSlugExhausted is returned when slug generation keeps colliding past
	// the retry bound.
	ErrSlugExhausted = errors.New("could not generate a unique slug")

	// ErrDuplicateSlug is returned by the repository when an insert hits the
	// slug uniqueness constraint. The usecase retries with a fresh slug.
	ErrDuplicateSlug = errors.New("slug already taken")

	// ErrNotOwner is returned when the caller does not own the referenced snapshot.
	ErrNotOwner = errors.New("caller does not own this share link")
)
