package usecase

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// slugLength is the length of a generated public slug.
	slugLength = 8

	// slugCharset is the base62 alphabet slugs are drawn from.
	slugCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// maxSlugAttempts bounds retries when a generated slug collides with an
	// existing one.
	maxSlugAttempts = 5
)

// newSlug generates a random base62 slug.
func newSlug() (string, error) {
	max := big.NewInt(int64(len(slugCharset)))
	b := make([]byte, slugLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate slug: %w", err)
		}
		b[i] = slugCharset[n.Int64()]
	}
	return string(b), nil
}
