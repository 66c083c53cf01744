// pkg/db/errors.go
package db

import (
	"context"
	"errors"

	"github.com/lib/pq"
)

// PostgreSQL error codes for conditions that may succeed when retried.
const (
	ErrCodeSerializationFailure = "40001"
	ErrCodeDeadlockDetected     = "40P01"
	ErrCodeLockNotAvailable     = "55P03"
	ErrCodeQueryCanceled        = "57014"
)

// IsRetryable reports whether err is a lock wait timeout, a serialization or
// deadlock abort, a statement cancellation, or a context deadline. None of
// these say anything about the request itself.
func IsRetryable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	switch pqErr.Code {
	case ErrCodeSerializationFailure, ErrCodeDeadlockDetected, ErrCodeLockNotAvailable, ErrCodeQueryCanceled:
		return true
	default:
		return false
	}
}

// IsDefiniteAbort reports whether the server rejected the transaction, so
// nothing it did was applied. A failed COMMIT is only safe to retry in that
// case; a timeout or dropped connection leaves the outcome unknown.
func IsDefiniteAbort(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == ErrCodeSerializationFailure || pqErr.Code == ErrCodeDeadlockDetected
}
