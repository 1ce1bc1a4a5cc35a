package middleware

import (
	"net/http"

	"github.com/dom/ep-app-api/internal/api/respond"
	"github.com/dom/ep-app-api/internal/service"
	"go.uber.org/zap"
)

// Ownership rejects requests whose X-User-ID header names a user other than
// the authenticated one. It must run after Auth.
func Ownership(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserID(r.Context())
			if !ok {
				respond.Error(w, http.StatusUnauthorized, respond.MessageUnauthenticated)
				return
			}

			if err := service.Authorize(userID, r.Header.Get(UserIDHeader)); err != nil {
				logger.Debug("ownership check failed",
					zap.String("userId", userID.String()),
					zap.String("declared", r.Header.Get(UserIDHeader)),
				)
				respond.Error(w, http.StatusForbidden, respond.MessageForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
