// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input provided")
)

// IsError reports whether err or anything it wraps matches target.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
