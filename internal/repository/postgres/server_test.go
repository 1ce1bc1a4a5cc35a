package postgres_test

import (
	"net/http"
	"testing"

	"github.com/dom/ep-app-api/internal/repository/postgres"
	"github.com/dom/ep-app-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestServerOnPostgres runs the register, record and list flow over HTTP
// against the real schema.
func TestServerOnPostgres(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	ts := testutil.NewTestServerWithRepos(t, postgres.NewRepositories(testDB.DB))

	auth := testutil.NewUserBuilder().WithEmail("a@a.com").WithPassword("secret").Register(t, ts)
	headers := testutil.Headers(auth.AccessToken, auth.UserID, "")

	resp := testutil.DoRequest(t, http.MethodPost, ts.URL("/seizures"), map[string]interface{}{
		"seizureType": "Absence",
		"length":      map[string]int{"seconds": 20},
	}, headers)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var created struct {
		ID string `json:"id"`
	}
	testutil.AssertJSONResponse(t, resp, &created)
	require.NotEmpty(t, created.ID)

	resp = testutil.DoRequest(t, http.MethodGet, ts.URL("/seizures"), nil, headers)
	defer resp.Body.Close()

	var seizures []struct {
		ID     string `json:"id"`
		Length struct {
			Seconds int `json:"seconds"`
		} `json:"length"`
	}
	testutil.AssertJSONResponse(t, resp, &seizures)
	require.Len(t, seizures, 1)
	assert.Equal(t, created.ID, seizures[0].ID)
	assert.Equal(t, 20, seizures[0].Length.Seconds)

	resp = testutil.DoRequest(t, http.MethodPost, ts.URL("/users"), map[string]string{
		"email":    "a@a.com",
		"password": "secret",
	}, nil)
	defer resp.Body.Close()
	testutil.AssertValidationError(t, resp, "email", "unique")
}
