package crypto

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/theater-demo/theater-api/internal/api/metrics"
)

// BcryptHasher implements domain.PasswordHasher with bcrypt. Digests embed
// their own salt and cost, so Compare works across cost changes.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using cost. Values outside bcrypt's
// accepted range fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Cost() int { return h.cost }

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	start := time.Now()
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	metrics.PasswordHashDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Compare reports whether plaintext matches digest. A malformed digest is a
// mismatch, not an error.
func (h *BcryptHasher) Compare(digest, plaintext string) bool {
	if digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
