package evaluator

import (
	"errors"
	"fmt"
)

// InvalidInputError is returned when a caller breaks the evaluation contract,
// e.g. passes no exercise, duplicate criteria, or untyped arguments of the wrong shape.
// It is a programming error on the caller side and is never defaulted away.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Field == "" {
		return "invalid input: " + e.Reason
	}
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

// IsInvalidInput reports whether err is, or wraps, an *InvalidInputError.
func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}
