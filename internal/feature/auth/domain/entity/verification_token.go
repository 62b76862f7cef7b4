package entity

import "time"

// VerificationToken is a short-lived challenge issued for passwordless sign-in
// and email verification. The (Identifier, Token) pair is the unique key: the
// same identifier may hold several outstanding tokens, but never two rows with
// an identical pair.
type VerificationToken struct {
	Identifier string    `gorm:"primaryKey;size:255"` // The email address being verified
	Token      string    `gorm:"primaryKey;size:64"`  // Opaque random value (64-character hex string)
	Expires    time.Time `gorm:"not null"`            // Expiration time
}

// TableName returns the table name for GORM.
func (VerificationToken) TableName() string {
	return "verification_tokens"
}

// IsExpired returns true if the token has passed its expiration time.
func (t *VerificationToken) IsExpired() bool {
	return time.Now().After(t.Expires)
}
