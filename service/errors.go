package service

import (
	"errors"
	"fmt"
)

// ErrRaceNotFound is returned when no race matches the requested id.
var ErrRaceNotFound = errors.New("race not found")

// ErrInvalidCredentials is returned on any username/password mismatch.
var ErrInvalidCredentials = errors.New("incorrect username or password")

// ValidationError reports a single rejected input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a field validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
