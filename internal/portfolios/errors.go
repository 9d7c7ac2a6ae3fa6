package portfolios

import "errors"

// ErrNotFound means no published portfolio exists for the given code.
var ErrNotFound = errors.New("not found")

// ValidationError reports a missing required field on the publish path.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " is required"
}
