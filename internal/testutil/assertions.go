package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertStatusCode verifies the HTTP response status code
func AssertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	assert.Equal(t, expected, resp.StatusCode, "unexpected status code")
}

// AssertJSONResponse decodes JSON response into v
func AssertJSONResponse(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	err = json.Unmarshal(body, v)
	require.NoError(t, err, "failed to unmarshal response: %s", string(body))
}

// AssertErrorResponse verifies an {"error": ...} body with the expected status
func AssertErrorResponse(t *testing.T, resp *http.Response, expectedStatus int, expectedMessage string) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode, "unexpected status code")

	var body struct {
		Error string `json:"error"`
	}
	AssertJSONResponse(t, resp, &body)
	assert.Equal(t, expectedMessage, body.Error, "error message mismatch")
}

// ValidationResponse matches the 400 response body
type ValidationResponse struct {
	Message string `json:"message"`
	Errors  []struct {
		Field string `json:"field"`
		Rule  string `json:"rule"`
		Param string `json:"param"`
	} `json:"errors"`
}

// AssertValidationError verifies a 400 response that reports field with rule
func AssertValidationError(t *testing.T, resp *http.Response, field, rule string) {
	t.Helper()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "unexpected status code")

	var body ValidationResponse
	AssertJSONResponse(t, resp, &body)
	assert.NotEmpty(t, body.Message)

	for _, e := range body.Errors {
		if e.Field == field && e.Rule == rule {
			return
		}
	}
	t.Errorf("validation errors %+v do not contain %s/%s", body.Errors, field, rule)
}

// AssertNotFound verifies a 404 {"notFound": true} response
func AssertNotFound(t *testing.T, resp *http.Response) {
	t.Helper()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "unexpected status code")

	var body struct {
		NotFound bool `json:"notFound"`
	}
	AssertJSONResponse(t, resp, &body)
	assert.True(t, body.NotFound)
}
