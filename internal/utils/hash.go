package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by ComparePassword when the password
// does not produce the stored hash.
var ErrPasswordMismatch = errors.New("password does not match hash")

// HashPassword derives a bcrypt hash of password using the given cost.
// The cost must lie within [bcrypt.MinCost, bcrypt.MaxCost].
//
// bcrypt only consumes the first 72 bytes of input; longer passwords
// are rejected by bcrypt itself and surface as an error here.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return "", fmt.Errorf("invalid bcrypt cost %d", cost)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// ComparePassword reports whether password matches the bcrypt hash.
// The comparison is constant time with respect to the password.
//
// Returns ErrPasswordMismatch for a wrong password, including one longer than
// bcrypt accepts (no stored hash can come from it), or a wrapped error when
// hash is not a valid bcrypt hash.
func ComparePassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) || errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return ErrPasswordMismatch
	}
	if err != nil {
		return fmt.Errorf("error comparing password: %w", err)
	}
	return nil
}
