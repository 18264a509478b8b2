package service

import (
	"errors"
	"fmt"

	sqlite3 "github.com/mattn/go-sqlite3"
)

// Typed failures surfaced to calling collaborators. Precondition failures
// are sentinels so callers can branch with errors.Is; storage failures are
// wrapped with operation context and unwound through the open transaction.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("admin privileges required")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrUnknownUser        = errors.New("user does not exist")
	ErrUnknownItem        = errors.New("item does not exist")
	ErrAlreadyAdmin       = errors.New("user is already an admin")
)

// ValidationError reports a missing or invalid required field, caught
// before any write happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// isUniqueViolation reports whether err is a sqlite UNIQUE constraint
// failure, e.g. a duplicate email racing past the precheck.
func isUniqueViolation(err error) bool {
	var se sqlite3.Error
	return errors.As(err, &se) && se.ExtendedCode == sqlite3.ErrConstraintUnique
}
