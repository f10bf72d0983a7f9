package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE unique_violation.
const codeUniqueViolation = "23505"

// isUniqueViolation reporta si err proviene de una violación de índice único.
// pgx entrega los errores del servidor como *pgconn.PgError, incluso envueltos,
// así que errors.As alcanza para clasificarlos.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}
