package service

import (
	"strconv"

	"github.com/dom/ep-app-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher salts and hashes passwords with bcrypt. Each hash embeds its
// own random salt.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash rejects passwords bcrypt cannot take in full with a validation error
// on the password field. The max tag counts runes, so multi-byte input can
// still reach this check.
func (h *PasswordHasher) Hash(password string) (string, error) {
	if len(password) > domain.MaxPasswordBytes {
		return "", domain.NewValidationError(domain.FieldError{
			Field: "password",
			Rule:  "max",
			Param: strconv.Itoa(domain.MaxPasswordBytes),
		})
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *PasswordHasher) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
