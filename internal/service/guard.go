package service

import (
	"strings"

	"github.com/dom/ep-app-api/internal/domain"
	"github.com/google/uuid"
)

// Authorize checks a caller-declared target user id against the identity
// resolved from the access token. An empty declaration defers to the
// identity; anything else must name the same user.
func Authorize(identity uuid.UUID, declared string) error {
	declared = strings.TrimSpace(declared)
	if declared == "" {
		return nil
	}
	target, err := uuid.Parse(declared)
	if err != nil || target != identity {
		return domain.ErrForbidden
	}
	return nil
}
