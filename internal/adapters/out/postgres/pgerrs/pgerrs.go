// Package pgerrs classifies PostgreSQL errors returned through gorm.
package pgerrs

import (
	"errors"

	"waypoint/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// UniqueViolation is the SQLSTATE of unique_violation.
const UniqueViolation = "23505"

// IsUniqueViolation reports whether err is, or wraps, a unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == UniqueViolation
	}
	return false
}

// Unique converts a unique violation into an ObjectAlreadyExistsError on field.
// Any other error, including nil, is returned unchanged.
func Unique(err error, field string, value any) error {
	if IsUniqueViolation(err) {
		return errs.NewObjectAlreadyExistsErrorWithCause(field, value, err)
	}
	return err
}
