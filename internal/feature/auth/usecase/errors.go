// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrTokenNotFound is returned when no verification token matches the (identifier, token) pair.
	ErrTokenNotFound = errors.New("verification token not found")

	// ErrTokenExpired is returned when a matching verification token exists but has expired.
	ErrTokenExpired = errors.New("verification token has expired")

	// ErrInvalidEmail is returned when a sign-in is requested for a malformed email address.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidPlan is returned when a plan change names an unknown subscription plan.
	ErrInvalidPlan = errors.New("unknown subscription plan")
)
