package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// unique_violation per the Postgres error code catalog
const uniqueViolationCode = "23505"

// isUniqueViolation reports whether err is a unique-constraint violation.
// The constraint is the authoritative duplicate signal; application-level
// existence checks only reduce user-facing races.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
