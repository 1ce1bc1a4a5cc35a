package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/dom/ep-app-api/internal/api/middleware"
	"github.com/dom/ep-app-api/internal/api/respond"
	"github.com/dom/ep-app-api/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// writeError maps a service error onto its HTTP response. message is used as
// the summary of 400 responses.
func writeError(w http.ResponseWriter, logger *zap.Logger, op string, err error, message string) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		respond.Validation(w, message, validationErr.Fields)
	case errors.Is(err, domain.ErrValidationFailed):
		respond.Validation(w, message, nil)
	case errors.Is(err, domain.ErrUnauthenticated):
		respond.Error(w, http.StatusUnauthorized, respond.MessageUnauthenticated)
	case errors.Is(err, domain.ErrForbidden):
		respond.Error(w, http.StatusForbidden, respond.MessageForbidden)
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrAuthFailed):
		respond.NotFound(w)
	default:
		logger.Error("request failed", zap.String("op", op), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, respond.MessageInternal)
	}
}

const unknownFieldPrefix = "json: unknown field "

// decodeJSON reads a single JSON object from the request body into v. An
// empty body decodes as {}. Unknown fields and trailing data are rejected.
func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		if name, ok := strings.CutPrefix(err.Error(), unknownFieldPrefix); ok {
			if unquoted, uerr := strconv.Unquote(name); uerr == nil {
				name = unquoted
			}
			return domain.NewValidationError(domain.FieldError{Field: name, Rule: domain.RuleUnknown})
		}
		return domain.NewValidationError(domain.FieldError{Field: "body", Rule: domain.RuleFormat})
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return domain.NewValidationError(domain.FieldError{Field: "body", Rule: domain.RuleFormat, Param: "single object"})
	}
	return nil
}

func recordID(r *http.Request) (uuid.UUID, error) {
	raw := strings.TrimSpace(r.Header.Get(middleware.RecordIDHeader))
	if raw == "" {
		return uuid.Nil, domain.NewValidationError(domain.FieldError{Field: middleware.RecordIDHeader, Rule: "required"})
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(domain.FieldError{Field: middleware.RecordIDHeader, Rule: domain.RuleFormat, Param: "uuid"})
	}
	return id, nil
}

func currentUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, respond.MessageUnauthenticated)
	}
	return userID, ok
}
