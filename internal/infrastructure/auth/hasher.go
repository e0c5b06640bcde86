package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"issuetracker/internal/domain/user"
)

var _ user.PasswordHasher = (*BcryptPasswordHasher)(nil)

// BcryptPasswordHasher stores account passwords as bcrypt hashes. A cost
// outside bcrypt's accepted range (including an unset config value) falls
// back to bcrypt.DefaultCost.
type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	h := &BcryptPasswordHasher{cost: bcrypt.DefaultCost}
	if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
		h.cost = cost
	}
	return h
}

// Hash refuses passwords bcrypt would silently truncate.
func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	if len(password) > user.MaxPasswordBytes {
		return "", user.ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash account password: %w", err)
	}
	return string(hash), nil
}

// Verify reports user.ErrPasswordMismatch both for a wrong password and for
// a stored value that is not a bcrypt hash.
func (h *BcryptPasswordHasher) Verify(password, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return user.ErrPasswordMismatch
	default:
		return fmt.Errorf("%w: stored hash unusable", user.ErrPasswordMismatch)
	}
}
