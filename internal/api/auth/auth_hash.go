package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/sanedge/blog-api/internal/api"
)

var _ PasswordHasher = (*BcryptHasher)(nil)

// PasswordHasher is the credential hashing contract. Hashing embeds a
// per-call random salt, so two hashes of the same password differ;
// comparison is constant-time with respect to early mismatch.
type PasswordHasher interface {
	// HashPassword returns the salted one-way hash of a plaintext password.
	HashPassword(password string) (string, error)

	// ComparePassword reports whether password matches the stored hash.
	// A mismatch is (false, nil); only a malformed stored hash is an error.
	ComparePassword(hashed, password string) (bool, error)
}

type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", api.ErrHashing, err)
	}
	return string(hashed), nil
}

func (h *BcryptHasher) ComparePassword(hashed, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("malformed password hash: %w", err)
}
