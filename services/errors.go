package services

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrPermissionDenied is returned before any side effect when the actor
	// does not hold the admin role.
	ErrPermissionDenied = errors.New("permission denied: admin role required")

	// ErrMissingTables signals that the database schema has not been set up
	// yet, so the caller can present setup guidance instead of a generic
	// failure.
	ErrMissingTables = errors.New("database tables missing")

	// ErrEmptyCart rejects a sale with no cart lines.
	ErrEmptyCart = errors.New("cart is empty")
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsUndefinedTable reports whether err means a relation does not exist.
// Postgres code 42P01; the sqlite message is matched for test databases.
func IsUndefinedTable(err error) bool {
	if err == nil {
		return false
	}
	if pgErrorCode(err) == "42P01" {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "does not exist") || strings.Contains(msg, "no such table")
}

// IsPermissionDenied reports whether err is a backend read restriction
// (Postgres 42501, row-level security). Treated as "show nothing", not as a
// failure, because it coincides with legitimate non-admin states.
func IsPermissionDenied(err error) bool {
	if err == nil {
		return false
	}
	if pgErrorCode(err) == "42501" {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "permission denied") || strings.Contains(msg, "row-level security")
}

// IsForeignKeyViolation reports whether err is a referential integrity
// rejection (Postgres 23503).
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if pgErrorCode(err) == "23503" {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "violates foreign key") || strings.Contains(msg, "FOREIGN KEY constraint failed")
}
