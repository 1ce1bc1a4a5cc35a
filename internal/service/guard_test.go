package service_test

import (
	"testing"

	"github.com/dom/ep-app-api/internal/domain"
	"github.com/dom/ep-app-api/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	identity := uuid.New()

	tests := []struct {
		name     string
		declared string
		wantErr  error
	}{
		{name: "no declaration", declared: ""},
		{name: "matching id", declared: identity.String()},
		{name: "matching id with whitespace", declared: " " + identity.String() + " "},
		{name: "other user", declared: uuid.New().String(), wantErr: domain.ErrForbidden},
		{name: "malformed id", declared: "not-a-uuid", wantErr: domain.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.Authorize(identity, tt.declared)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
