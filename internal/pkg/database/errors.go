package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes: https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeCheckViolation      = "23514"
	CodeNotNullViolation    = "23502"
)

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return nil, false
	}
	return pgErr, true
}

// IsUniqueViolation reports whether err is a unique_violation. When constraints
// are given, the violated constraint must be one of them.
func IsUniqueViolation(err error, constraints ...string) bool {
	return isViolation(err, CodeUniqueViolation, constraints)
}

// IsForeignKeyViolation reports whether err is a foreign_key_violation,
// optionally restricted to the given constraint names.
func IsForeignKeyViolation(err error, constraints ...string) bool {
	return isViolation(err, CodeForeignKeyViolation, constraints)
}

// IsCheckViolation reports whether err is a check_violation or a not_null_violation.
func IsCheckViolation(err error, constraints ...string) bool {
	return isViolation(err, CodeCheckViolation, constraints) || isViolation(err, CodeNotNullViolation, constraints)
}

// IsConstraintViolation reports whether err is any integrity constraint failure (class 23).
func IsConstraintViolation(err error) bool {
	pgErr, ok := pgError(err)
	return ok && len(pgErr.Code) == 5 && pgErr.Code[:2] == "23"
}

// ConstraintName returns the name of the violated constraint, or "".
func ConstraintName(err error) string {
	if pgErr, ok := pgError(err); ok {
		return pgErr.ConstraintName
	}
	return ""
}

func isViolation(err error, code string, constraints []string) bool {
	pgErr, ok := pgError(err)
	if !ok || pgErr.Code != code {
		return false
	}
	if len(constraints) == 0 {
		return true
	}
	for _, c := range constraints {
		if pgErr.ConstraintName == c {
			return true
		}
	}
	return false
}
