package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dom/ep-app-api/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantIs    error
		wantField string
	}{
		{
			name:   "record not found",
			err:    fmt.Errorf("first: %w", gorm.ErrRecordNotFound),
			wantIs: domain.ErrNotFound,
		},
		{
			name:      "unique email",
			err:       &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"},
			wantIs:    domain.ErrValidationFailed,
			wantField: "email",
		},
		{
			name:      "unique access token",
			err:       &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_access_token"},
			wantIs:    domain.ErrValidationFailed,
			wantField: "accessToken",
		},
		{
			name:      "unknown constraint",
			err:       &pgconn.PgError{Code: "23505", ConstraintName: "seizures_pkey"},
			wantIs:    domain.ErrValidationFailed,
			wantField: "seizures_pkey",
		},
		{
			name:      "translated duplicate key",
			err:       gorm.ErrDuplicatedKey,
			wantIs:    domain.ErrValidationFailed,
			wantField: "id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := translateError(tt.err)
			assert.ErrorIs(t, err, tt.wantIs)

			if tt.wantField != "" {
				var vErr *domain.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, tt.wantField, vErr.Fields[0].Field)
				assert.Equal(t, domain.RuleUnique, vErr.Fields[0].Rule)
			}
		})
	}
}

func TestTranslateError_Passthrough(t *testing.T) {
	assert.NoError(t, translateError(nil))

	cause := errors.New("connection reset")
	err := translateError(cause)
	assert.ErrorIs(t, err, cause)
	assert.EqualError(t, err, "db error: connection reset")

	checkViolation := &pgconn.PgError{Code: "23514"}
	assert.NotErrorIs(t, translateError(checkViolation), domain.ErrValidationFailed)
}
