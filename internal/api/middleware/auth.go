package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dom/ep-app-api/internal/api/respond"
	"github.com/dom/ep-app-api/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type contextKey string

const (
	UserKey contextKey = "user"
)

const (
	AuthorizationHeader = "Authorization"
	UserIDHeader        = "X-User-ID"
	RecordIDHeader      = "X-Record-ID"
)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// Auth resolves the access token in the Authorization header and stores the
// user in the request context. The header carries the raw token; a
// "Bearer " prefix is accepted as well.
func Auth(authenticator Authenticator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := accessToken(r.Header.Get(AuthorizationHeader))

			user, err := authenticator.Authenticate(r.Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthenticated) {
					logger.Debug("authentication rejected", zap.String("path", r.URL.Path))
					respond.Error(w, http.StatusUnauthorized, respond.MessageUnauthenticated)
					return
				}
				logger.Error("authentication lookup failed", zap.Error(err))
				respond.Error(w, http.StatusInternalServerError, respond.MessageInternal)
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(UserKey).(*domain.User)
	return user, ok && user != nil
}

func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	user, ok := GetUser(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return user.ID, true
}

func accessToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}
