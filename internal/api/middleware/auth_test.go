package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dom/ep-app-api/internal/api/middleware"
	"github.com/dom/ep-app-api/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type authenticatorFunc func(ctx context.Context, token string) (*domain.User, error)

func (f authenticatorFunc) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	return f(ctx, token)
}

func tokenAuthenticator(token string, user *domain.User) authenticatorFunc {
	return func(ctx context.Context, got string) (*domain.User, error) {
		if got == "" || got != token {
			return nil, domain.ErrUnauthenticated
		}
		return user, nil
	}
}

// echoUserID responds with the id of the user stored in the request context
var echoUserID = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		w.WriteHeader(http.StatusTeapot)
		return
	}
	w.Write([]byte(userID.String()))
})

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestAuth(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Email: "a@a.com"}
	handler := middleware.Auth(tokenAuthenticator("abc123", user), zap.NewNop())(echoUserID)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{name: "raw token", header: "abc123", expectedStatus: http.StatusOK},
		{name: "bearer token", header: "Bearer abc123", expectedStatus: http.StatusOK},
		{name: "lowercase bearer", header: "bearer abc123", expectedStatus: http.StatusOK},
		{name: "missing header", header: "", expectedStatus: http.StatusUnauthorized},
		{name: "unknown token", header: "nope", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/seizures", nil)
			if tt.header != "" {
				req.Header.Set(middleware.AuthorizationHeader, tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, user.ID.String(), rec.Body.String())
				return
			}
			assert.Equal(t, "Please try logging in again", errorBody(t, rec))
		})
	}
}

func TestAuth_LookupFailure(t *testing.T) {
	failing := authenticatorFunc(func(ctx context.Context, token string) (*domain.User, error) {
		return nil, errors.New("connection refused")
	})
	handler := middleware.Auth(failing, zap.NewNop())(echoUserID)

	req := httptest.NewRequest(http.MethodGet, "/seizures", nil)
	req.Header.Set(middleware.AuthorizationHeader, "abc123")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", errorBody(t, rec))
}

func TestGetUser_Empty(t *testing.T) {
	_, ok := middleware.GetUser(context.Background())
	assert.False(t, ok)

	_, ok = middleware.GetUserID(context.Background())
	assert.False(t, ok)
}
