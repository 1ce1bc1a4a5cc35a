package handlers_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/dom/ep-app-api/internal/domain"
	"github.com/dom/ep-app-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name           string
		request        map[string]string
		setup          func()
		expectedStatus int
		errorField     string
		errorRule      string
	}{
		{
			name: "successful registration",
			request: map[string]string{
				"email":    "a@a.com",
				"password": "secret",
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "missing email",
			request: map[string]string{
				"password": "secret",
			},
			expectedStatus: http.StatusBadRequest,
			errorField:     "email",
			errorRule:      "required",
		},
		{
			name: "short password",
			request: map[string]string{
				"email":    "b@b.com",
				"password": "abc",
			},
			expectedStatus: http.StatusBadRequest,
			errorField:     "password",
			errorRule:      "min",
		},
		{
			name: "password longer than 72 bytes",
			request: map[string]string{
				"email":    "long@a.com",
				"password": strings.Repeat("p", 80),
			},
			expectedStatus: http.StatusBadRequest,
			errorField:     "password",
			errorRule:      "max",
		},
		{
			name: "unknown field",
			request: map[string]string{
				"email":    "c@c.com",
				"password": "secret",
				"userId":   "00000000-0000-0000-0000-000000000001",
			},
			expectedStatus: http.StatusBadRequest,
			errorField:     "userId",
			errorRule:      "unknown",
		},
		{
			name: "duplicate email",
			request: map[string]string{
				"email":    "existing@example.com",
				"password": "secret",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithEmail("existing@example.com").
					Build(t, ts.Repos.User)
			},
			expectedStatus: http.StatusBadRequest,
			errorField:     "email",
			errorRule:      "unique",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			resp := testutil.DoRequest(t, http.MethodPost, ts.URL("/users"), tt.request, nil)
			defer resp.Body.Close()

			if tt.expectedStatus == http.StatusBadRequest {
				testutil.AssertValidationError(t, resp, tt.errorField, tt.errorRule)
				return
			}

			testutil.AssertStatusCode(t, resp, tt.expectedStatus)
			var result testutil.AuthResponse
			testutil.AssertJSONResponse(t, resp, &result)
			assert.NotEmpty(t, result.UserID)
			assert.Len(t, result.AccessToken, 256)
		})
	}
}

func TestAuthHandler_RegisterMalformedBody(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := testutil.DoRequest(t, http.MethodPost, ts.URL("/users"), "not an object", nil)
	defer resp.Body.Close()

	testutil.AssertValidationError(t, resp, "body", "format")
}

func TestAuthHandler_RegisterTrailingData(t *testing.T) {
	ts := testutil.NewTestServer(t)

	body := `{"email":"a@a.com","password":"secret"} {"email":"b@b.com"}`
	resp, err := http.Post(ts.URL("/users"), "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	testutil.AssertValidationError(t, resp, "body", "format")

	_, err = ts.Repos.User.GetByEmail(context.Background(), "a@a.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAuthHandler_Login(t *testing.T) {
	ts := testutil.NewTestServer(t)
	registered := testutil.NewUserBuilder().
		WithEmail("a@a.com").
		WithPassword("secret").
		Register(t, ts)

	tests := []struct {
		name           string
		request        map[string]string
		expectedStatus int
	}{
		{
			name: "successful login",
			request: map[string]string{
				"email":    "a@a.com",
				"password": "secret",
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "wrong password",
			request: map[string]string{
				"email":    "a@a.com",
				"password": "wrongpassword",
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "unknown email",
			request: map[string]string{
				"email":    "nobody@example.com",
				"password": "secret",
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := testutil.DoRequest(t, http.MethodPost, ts.URL("/sessions"), tt.request, nil)
			defer resp.Body.Close()

			if tt.expectedStatus == http.StatusNotFound {
				testutil.AssertNotFound(t, resp)
				return
			}

			testutil.AssertStatusCode(t, resp, tt.expectedStatus)
			var result testutil.AuthResponse
			testutil.AssertJSONResponse(t, resp, &result)
			assert.Equal(t, registered.UserID, result.UserID)
			assert.Equal(t, registered.AccessToken, result.AccessToken)
		})
	}
}
