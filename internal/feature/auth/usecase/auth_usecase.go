package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"devsnap_backend/internal/feature/auth/domain/entity"
)

const (
	// tokenByteLength is the entropy of a sign-in token: 32 random bytes,
	// hex-encoded to a 64-character string.
	tokenByteLength = 32
)

// JWTGenerator defines the interface for JWT token generation.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (platform/jwt).
type JWTGenerator interface {
	// GenerateToken creates a signed JWT token for the given user.
	GenerateToken(userID string, email string) (string, error)
}

// TokenSender delivers a sign-in token to the address that requested it.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (platform/mailer).
type TokenSender interface {
	// SendSignInToken sends the token to the given email address.
	SendSignInToken(ctx context.Context, email, token string) error
}

// authUsecase implements passwordless sign-in: a verification token is issued
// and mailed to the address, and exchanging a valid token yields a signed JWT.
// The user row is created on first successful verification.
type authUsecase struct {
	users        UserRepository
	tokens       VerificationTokenRepository
	jwtGenerator JWTGenerator
	sender       TokenSender
	tokenTTL     time.Duration
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, tokens VerificationTokenRepository, jwtGenerator JWTGenerator, sender TokenSender, tokenTTL time.Duration) *authUsecase {
	return &authUsecase{
		users:        users,
		tokens:       tokens,
		jwtGenerator: jwtGenerator,
		sender:       sender,
		tokenTTL:     tokenTTL,
	}
}

// validateEmail checks that the address is well formed.
func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

// newSignInToken generates a cryptographically random token value.
func newSignInToken() (string, error) {
	b := make([]byte, tokenByteLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// RequestSignIn issues a verification token for the address and mails it.
// Repeated requests for the same address issue additional tokens; outstanding
// ones stay valid until consumed or expired.
func (u *authUsecase) RequestSignIn(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateEmail(email); err != nil {
		return err
	}

	value, err := newSignInToken()
	if err != nil {
		return err
	}

	token := &entity.VerificationToken{
		Identifier: email,
		Token:      value,
		Expires:    time.Now().Add(u.tokenTTL),
	}
	if err := u.tokens.Create(ctx, token); err != nil {
		return fmt.Errorf("failed to store verification token: %w", err)
	}

	if err := u.sender.SendSignInToken(ctx, email, value); err != nil {
		return fmt.Errorf("failed to send sign-in token: %w", err)
	}
	return nil
}

// VerifySignIn consumes a verification token and returns a signed JWT.
// On the first successful sign-in for an address the user row is created;
// either way the email-verified timestamp is stamped.
func (u *authUsecase) VerifySignIn(ctx context.Context, email, token string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateEmail(email); err != nil {
		return "", err
	}

	// Atomic consume: a second submission of the same token fails with ErrTokenNotFound.
	if err := u.tokens.Consume(ctx, email, token, time.Now()); err != nil {
		return "", err
	}

	user, err := u.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		// Existing account.
	case errors.Is(err, ErrUserNotFound):
		user = &entity.User{
			ID:    uuid.NewString(),
			Email: email,
			Plan:  entity.PlanFree,
		}
		if createErr := u.users.Create(ctx, user); createErr != nil {
			return "", fmt.Errorf("failed to create user: %w", createErr)
		}
	default:
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if user.EmailVerified == nil {
		if err := u.users.MarkEmailVerified(ctx, user.ID, time.Now()); err != nil {
			return "", fmt.Errorf("failed to mark email verified: %w", err)
		}
	}

	signed, err := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return signed, nil
}
