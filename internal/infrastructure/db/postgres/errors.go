package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// IsPgUniqueViolation reports whether err is a Postgres unique-constraint
// violation. The repositories use it to turn a constraint hit into a
// domain error, which also covers duplicates that slip past the advisory
// existence check under concurrent writes.
func IsPgUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
