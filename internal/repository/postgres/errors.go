// internal/repository/postgres/errors.go
package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	cerrors "github.com/cockroachdb/errors"
	"github.com/lib/pq"

	"wishfund/internal/util"
	"wishfund/pkg/db"
)

// Integrity violations the store maps onto domain errors.
const (
	pgErrForeignKeyViolation = "23503"
	pgErrCheckViolation      = "23514"
	pgErrNumericOutOfRange   = "22003"
)

// constraintRaisedWithinPrice is the CHECK that keeps 0 <= raised <= price.
const constraintRaisedWithinPrice = "wishes_raised_within_price"

// translateError maps a driver error onto the application's error kinds.
// notFound is returned for sql.ErrNoRows; everything unrecognised is wrapped
// with msg and left for the caller to treat as internal.
func translateError(err error, notFound error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}
	if db.IsRetryable(err) {
		return util.AsTransient(err, msg)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pgErrForeignKeyViolation:
			return cerrors.Mark(cerrors.Wrap(err, msg), util.ErrNotFound)
		case pgErrCheckViolation:
			if pqErr.Constraint == constraintRaisedWithinPrice {
				return util.ErrExceedsTarget
			}
			return invalidInput(err, msg)
		case pgErrNumericOutOfRange:
			return invalidInput(err, msg)
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// invalidInput reports ErrInvalidInput and keeps the driver error as detail
// for logs only.
func invalidInput(err error, msg string) error {
	return cerrors.WithSecondaryError(cerrors.Wrap(util.ErrInvalidInput, msg), err)
}
