// Package hasher wraps bcrypt for password storage.
package hasher

import (
	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordTooLong is returned by Hash for passwords bcrypt cannot accept (over 72 bytes).
var ErrPasswordTooLong = bcrypt.ErrPasswordTooLong

// BcryptHasher produces salted bcrypt digests.
type BcryptHasher struct {
	cost int
}

// New returns a hasher using the given bcrypt cost.
// A cost outside bcrypt's supported range falls back to bcrypt.DefaultCost.
func New(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns the bcrypt digest of password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether password matches hash. A malformed hash never matches.
func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
