// internal/util/errors.go
package util

import (
	"github.com/cockroachdb/errors"
)

// Error kinds. Every sentinel below belongs to exactly one kind so callers
// can branch on the category without knowing the concrete error.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("resource not found")
	ErrTransient    = errors.New("temporarily unavailable")
	ErrInternal     = errors.New("internal error")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
)

// kindError is a sentinel that matches its own kind but never a sibling of
// the same kind.
type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }

// Is reports whether target is the kind of e.
func (e *kindError) Is(target error) bool { return target == e.kind }

func newKindError(kind error, msg string) error {
	return &kindError{msg: msg, kind: kind}
}

// Contribution rejections.
var (
	ErrSelfFunding   = newKindError(ErrValidation, "you cannot contribute to your own gift")
	ErrAlreadyFunded = newKindError(ErrValidation, "funds are already fully collected")
	ErrExceedsTarget = newKindError(ErrValidation, "collected amount cannot exceed gift price")
	ErrInvalidAmount = newKindError(ErrValidation, "amount must be positive with at most two decimal places")
)

// Common application-specific errors.
var (
	ErrInvalidInput  = newKindError(ErrValidation, "invalid input provided")
	ErrPriceLocked   = newKindError(ErrValidation, "cannot update the price when there are existing offers")
	ErrUserNotFound  = newKindError(ErrNotFound, "user not found")
	ErrWishNotFound  = newKindError(ErrNotFound, "wish not found")
	ErrOfferNotFound = newKindError(ErrNotFound, "offer not found")
	ErrNotWishOwner  = newKindError(ErrForbidden, "you cannot edit someone else's gift")
	ErrRaisedManaged = newKindError(ErrForbidden, "the amount of collected funds cannot be changed")
)

// Client-facing codes, keyed by sentinel. Order matters: the most specific
// sentinel must come before the kind it is marked with.
var errorCodes = []struct {
	err  error
	code string
}{
	{ErrSelfFunding, "SELF_FUNDING"},
	{ErrAlreadyFunded, "ALREADY_FULLY_FUNDED"},
	{ErrExceedsTarget, "EXCEEDS_TARGET"},
	{ErrInvalidAmount, "INVALID_AMOUNT"},
	{ErrPriceLocked, "PRICE_LOCKED"},
	{ErrInvalidInput, "INVALID_INPUT"},
	{ErrUserNotFound, "NOT_FOUND"},
	{ErrWishNotFound, "NOT_FOUND"},
	{ErrOfferNotFound, "NOT_FOUND"},
	{ErrNotFound, "NOT_FOUND"},
	{ErrNotWishOwner, "FORBIDDEN"},
	{ErrRaisedManaged, "FORBIDDEN"},
	{ErrForbidden, "FORBIDDEN"},
	{ErrUnauthorized, "UNAUTHORIZED"},
	{ErrTransient, "TRANSIENT"},
}

// IsError reports whether err matches target anywhere in its chain,
// including marks.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}

// Code returns the client-facing code for err, or "INTERNAL" when err does not
// belong to a known category.
func Code(err error) string {
	for _, c := range errorCodes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return "INTERNAL"
}

// PublicMessage returns a message safe to show a client: the text of the
// matching sentinel, never the wrapped storage detail.
func PublicMessage(err error) string {
	for _, c := range errorCodes {
		if errors.Is(err, c.err) {
			return c.err.Error()
		}
	}
	return "internal server error"
}

// IsClientError reports whether err was caused by the caller (validation,
// missing resource, permissions) rather than by the system.
func IsClientError(err error) bool {
	return errors.IsAny(err, ErrValidation, ErrNotFound, ErrForbidden, ErrUnauthorized)
}

// AsTransient marks err as retryable.
func AsTransient(err error, msg string) error {
	return errors.Mark(errors.Wrap(err, msg), ErrTransient)
}

// AsInternal marks err as an opaque internal failure.
func AsInternal(err error, msg string) error {
	return errors.Mark(errors.Wrap(err, msg), ErrInternal)
}
