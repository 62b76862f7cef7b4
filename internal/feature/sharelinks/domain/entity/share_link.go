// Package entity defines the domain entities for the sharelinks feature.
package entity

import "time"

// Visibility is the access-gate class of a share link.
type Visibility string

const (
	VisibilityPublic   Visibility = "public"
	VisibilityUnlisted Visibility = "unlisted"
	VisibilityPrivate  Visibility = "private"
)

// Valid reports whether v is one of the known visibility classes.
func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPublic, VisibilityUnlisted, VisibilityPrivate:
		return true
	}
	return false
}

// ShareLink is a slug-addressed public pointer to exactly one snapshot,
// gated by visibility, an optional password and an optional expiry. Several
// links may point at the same snapshot under distinct slugs.
type ShareLink struct {
	// ID is the unique identifier for the link (UUID string).
	ID string `gorm:"primaryKey;size:36"`

	// SnapshotID is the referenced snapshot. Deleting the snapshot deletes the link.
	SnapshotID string `gorm:"size:36;not null;index"`

	// Slug is the external lookup key. Globally unique, immutable once created.
	Slug string `gorm:"uniqueIndex;size:16;not null"`

	// Visibility gates resolution. Unlisted behaves like public at resolution
	// time; the listing distinction is a concern of listing surfaces.
	Visibility Visibility `gorm:"size:16;not null;default:public"`

	// PasswordHash is the bcrypt hash of the access password, empty when the
	// link is not password-gated. The plaintext is never stored.
	PasswordHash string `gorm:"column:password;size:255"`

	// ViewCount is the number of successful resolutions. Monotonically
	// increasing; failed or expired resolution attempts never touch it.
	ViewCount int64 `gorm:"not null;default:0"`

	// ExpiresAt makes the link resolve as expired once passed. Expired links
	// are kept until the owner deletes them, so they stay auditable.
	ExpiresAt *time.Time

	CreatedAt time.Time
}

// TableName returns the table name for GORM.
func (ShareLink) TableName() string {
	return "share_links"
}

// IsExpired returns true if the link has an expiry and it has passed.
func (l *ShareLink) IsExpired(now time.Time) bool {
	return l.ExpiresAt != nil && now.After(*l.ExpiresAt)
}

// PasswordGated returns true if resolving the link requires a password.
func (l *ShareLink) PasswordGated() bool {
	return l.PasswordHash != ""
}
