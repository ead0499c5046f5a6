// Package apperror holds the sentinel errors shared across services and
// controllers. Services wrap these with context via fmt.Errorf and %w; the
// HTTP layer maps them to status codes with errors.Is.
package apperror

import "errors"

var (
	// ErrNotFound means a referenced entity id does not exist. The operation
	// aborts with no partial write.
	ErrNotFound = errors.New("entity not found")

	// ErrValidation means the caller passed an out-of-domain value. Rejected
	// before any persistence is attempted.
	ErrValidation = errors.New("validation failed")

	// ErrRateLimited means the passphrase gate is currently blocking attempts.
	ErrRateLimited = errors.New("too many attempts")

	// ErrUnauthorized means the passphrase did not match.
	ErrUnauthorized = errors.New("invalid passphrase")
)
