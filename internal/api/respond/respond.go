// Package respond writes the JSON bodies shared by handlers and middleware.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/dom/ep-app-api/internal/domain"
)

const (
	MessageUnauthenticated = "Please try logging in again"
	MessageForbidden       = "Access Denied"
	MessageInternal        = "Internal server error"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type ValidationErrorResponse struct {
	Message string              `json:"message"`
	Errors  []domain.FieldError `json:"errors"`
}

type NotFoundResponse struct {
	NotFound bool `json:"notFound"`
}

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorResponse{Error: message})
}

func Validation(w http.ResponseWriter, message string, fields []domain.FieldError) {
	if fields == nil {
		fields = []domain.FieldError{}
	}
	JSON(w, http.StatusBadRequest, ValidationErrorResponse{Message: message, Errors: fields})
}

func NotFound(w http.ResponseWriter) {
	JSON(w, http.StatusNotFound, NotFoundResponse{NotFound: true})
}
