package repositories

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicate  = errors.New("unique constraint violation")
	ErrForeignKey = errors.New("foreign key violation")
	ErrOutOfRange = errors.New("numeric value out of range")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNumericOutOfRange   = "22003"
)

// translate maps driver errors onto the package's sentinel errors, keeping
// the original error reachable through errors.Cause.
func translate(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return errors.Wrapf(ErrDuplicate, "%s: %s", op, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return errors.Wrapf(ErrForeignKey, "%s: %s", op, pgErr.ConstraintName)
		case pgNumericOutOfRange:
			return errors.Wrapf(ErrOutOfRange, "%s: %s", op, pgErr.Message)
		}
	}
	return errors.Wrap(err, op)
}
