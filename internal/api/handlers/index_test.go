package handlers_test

import (
	"net/http"
	"testing"

	"github.com/dom/ep-app-api/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestIndexHandler(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := testutil.DoRequest(t, http.MethodGet, ts.URL("/"), nil, nil)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var index struct {
		Title     string `json:"title"`
		Endpoints []struct {
			Method string `json:"method"`
			Path   string `json:"path"`
		} `json:"endpoints"`
	}
	testutil.AssertJSONResponse(t, resp, &index)
	assert.Equal(t, "The Epilepsy App's API", index.Title)

	listed := make(map[string]bool)
	for _, e := range index.Endpoints {
		listed[e.Method+" "+e.Path] = true
	}
	for _, want := range []string{
		"GET /",
		"POST /users",
		"POST /sessions",
		"GET /seizuretypes",
		"GET /contacttypes",
		"GET /seizures",
		"DELETE /seizures",
		"PATCH /contacts",
		"GET /userdata",
	} {
		assert.True(t, listed[want], "missing endpoint %s", want)
	}
}

func TestHealth(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := testutil.DoRequest(t, http.MethodGet, ts.URL("/health"), nil, nil)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusOK)
}
