package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dom/ep-app-api/internal/api/middleware"
	"github.com/dom/ep-app-api/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestOwnership(t *testing.T) {
	user := &domain.User{ID: uuid.New()}
	handler := middleware.Auth(tokenAuthenticator("abc123", user), zap.NewNop())(
		middleware.Ownership(zap.NewNop())(echoUserID),
	)

	tests := []struct {
		name           string
		declared       string
		expectedStatus int
	}{
		{name: "no declared user", declared: "", expectedStatus: http.StatusOK},
		{name: "declared self", declared: user.ID.String(), expectedStatus: http.StatusOK},
		{name: "declared other user", declared: uuid.New().String(), expectedStatus: http.StatusForbidden},
		{name: "declared garbage", declared: "someone", expectedStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/seizures", nil)
			req.Header.Set(middleware.AuthorizationHeader, "abc123")
			if tt.declared != "" {
				req.Header.Set(middleware.UserIDHeader, tt.declared)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusForbidden {
				assert.Equal(t, "Access Denied", errorBody(t, rec))
			}
		})
	}
}

func TestOwnership_WithoutAuth(t *testing.T) {
	handler := middleware.Ownership(zap.NewNop())(echoUserID)

	req := httptest.NewRequest(http.MethodGet, "/seizures", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
