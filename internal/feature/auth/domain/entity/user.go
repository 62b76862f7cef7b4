// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Plan is the subscription tier of a user account.
type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
	PlanTeam Plan = "team"
)

// Valid reports whether p is one of the known subscription plans.
func (p Plan) Valid() bool {
	switch p {
	case PlanFree, PlanPro, PlanTeam:
		return true
	}
	return false
}

// User represents a registered user in the system.
// A user is created on first successful sign-in and owns any number of snapshots.
type User struct {
	// ID is the unique identifier for the user (UUID string).
	ID string `gorm:"primaryKey;size:36"`

	// Email is the user's email address used for sign-in.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// EmailVerified is the time the email address was verified, nil until then.
	EmailVerified *time.Time

	// Name is the user's display name.
	Name string `gorm:"size:255"`

	// Image is the URL of the user's avatar image.
	Image string `gorm:"size:1024"`

	// Plan is the user's subscription plan.
	Plan Plan `gorm:"size:16;not null;default:free"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
