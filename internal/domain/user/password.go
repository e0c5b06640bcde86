package user

import (
	"errors"
	"fmt"
)

const (
	MinPasswordLength = 6
	// MaxPasswordBytes is the longest input bcrypt hashes without truncation.
	MaxPasswordBytes = 72
)

var (
	ErrPasswordMismatch = errors.New("password does not match")
	ErrPasswordTooLong  = fmt.Errorf("password must be at most %d bytes", MaxPasswordBytes)
)

// PasswordHasher hashes and verifies plain-text passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// ValidatePassword checks the plain-text password policy.
func ValidatePassword(password string, minLength int) error {
	if minLength < MinPasswordLength {
		minLength = MinPasswordLength
	}
	if len([]rune(password)) < minLength {
		return fmt.Errorf("password must be at least %d characters", minLength)
	}
	if len(password) > MaxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

// VerifyPassword checks password against the stored hash.
func (u *User) VerifyPassword(password string, hasher PasswordHasher) error {
	if u.passwordHash == "" {
		return fmt.Errorf("password login is not available")
	}
	return hasher.Verify(password, u.passwordHash)
}
