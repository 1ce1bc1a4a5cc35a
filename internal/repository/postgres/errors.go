package postgres

import (
	"errors"
	"fmt"

	"github.com/dom/ep-app-api/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// uniqueFields maps unique index names created by AutoMigrate to the JSON
// field they guard.
var uniqueFields = map[string]string{
	"idx_users_email":        "email",
	"idx_users_access_token": "accessToken",
}

func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		field, ok := uniqueFields[pgErr.ConstraintName]
		if !ok {
			field = pgErr.ConstraintName
		}
		return domain.NewValidationError(domain.FieldError{Field: field, Rule: domain.RuleUnique})
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.NewValidationError(domain.FieldError{Field: "id", Rule: domain.RuleUnique})
	}

	return fmt.Errorf("db error: %w", err)
}
