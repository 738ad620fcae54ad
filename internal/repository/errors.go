package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Коды ошибок Postgres: https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgErrUniqueViolation = "23505"
)

// IsPgErrorWithCode разворачивает цепочку ошибок до *pgconn.PgError
// и сверяет SQLSTATE.
func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
