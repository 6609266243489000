// internal/domain/errors.go
package domain

import (
	"fmt"

	"sales-analytics/internal/util"
)

// ValidationError describes malformed input: a bad record field, an unparseable
// date or an unknown sort key. Index is the record position inside an ingestion
// batch, or -1 when the error is not tied to a record.
type ValidationError struct {
	Field   string
	Index   int
	Message string
}

// NewValidationError creates a ValidationError.
func NewValidationError(field string, index int, message string) *ValidationError {
	return &ValidationError{Field: field, Index: index, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("invalid input: record %d: %s: %s", e.Index, e.Field, e.Message)
	}
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Message)
}

// Is lets errors.Is(err, util.ErrInvalidInput) match every ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == util.ErrInvalidInput
}
