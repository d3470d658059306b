package security

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/codeleap/learning-platform/internal/core/domain"
)

// PasswordHasher wraps bcrypt with a fixed cost. The salt is generated per
// call and embedded in the hash, so verification needs no separate storage.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: bcrypt.DefaultCost}
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether password matches hash. Malformed hashes count as a
// mismatch rather than an error, so callers cannot distinguish the two.
func (h *PasswordHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePassword enforces the strength policy. Checks run in a fixed order
// (length, uppercase, lowercase, digit) and the first failure is returned.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return domain.ErrPasswordTooShort
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper {
		return domain.ErrPasswordNoUpper
	}
	if !hasLower {
		return domain.ErrPasswordNoLower
	}
	if !hasDigit {
		return domain.ErrPasswordNoDigit
	}
	return nil
}
