package models

import (
	"fmt"
	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("job posting not found")

// ValidationError reports a malformed query or posting, naming the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}
