package usecase

import (
	"context"
	"time"

	"devsnap_backend/internal/feature/auth/domain/entity"
)

// VerificationTokenRepository abstracts the persistence layer for sign-in tokens.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type VerificationTokenRepository interface {
	// Create persists a new verification token. The same identifier may hold
	// several outstanding tokens at once.
	Create(ctx context.Context, token *entity.VerificationToken) error

	// Consume atomically checks existence and non-expiry, deletes the row and
	// returns nil on success. It returns ErrTokenNotFound when no row matches
	// the pair and ErrTokenExpired when a matching row has expired. The
	// check-and-delete must be a single storage operation so a token can never
	// be consumed twice under concurrent requests.
	Consume(ctx context.Context, identifier, token string, now time.Time) error

	// DeleteExpired removes all expired tokens and returns the number deleted.
	DeleteExpired(ctx context.Context) (int64, error)
}
