package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation   = "23505"
	pgDuplicateDatabase = "42P04"
)

func IsPgUniqueViolation(err error) bool { return hasPgCode(err, pgUniqueViolation) }

func IsPgDuplicateDatabase(err error) bool { return hasPgCode(err, pgDuplicateDatabase) }

func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
