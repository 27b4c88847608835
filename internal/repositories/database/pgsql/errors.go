package pgsql

import (
	"errors"
	"strings"

	"github.com/assogestion/assogestion/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
)

// mapPgError translates PostgreSQL constraint failures into application errors.
// The capacity trigger raises with a recognisable message (P0001); unique and
// check violations cover duplicate registration and the singleton row.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case "23505": // unique_violation
		return apperrors.ErrDuplicate
	case "23514": // check_violation
		return apperrors.ErrConflict
	case "P0001": // raise_exception, from the capacity trigger
		if strings.Contains(pgErr.Message, "volunteer capacity") {
			return apperrors.ErrConflict
		}
	}
	return err
}
