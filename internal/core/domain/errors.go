package domain

import (
	"errors"
	"fmt"
)

var ErrProductionNotFound = errors.New("production not found")
var ErrProductionExists = errors.New("production already exists")
var ErrActorNotFound = errors.New("actor not found")
var ErrActorExists = errors.New("actor already exists")
var ErrRoleNotFound = errors.New("role not found")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")

// Field-level rejection reasons. They are always delivered wrapped in a
// *ValidationError that names the offending field.
var (
	ErrInvalidImage       = errors.New("image must be png or jpg")
	ErrInvalidYear        = errors.New("year must be greater than 1850")
	ErrInvalidAge         = errors.New("age must be between 0 and 200")
	ErrInvalidLength      = errors.New("length must be greater than 0")
	ErrRequiredField      = errors.New("cannot be empty")
	ErrDescriptionTooLong = errors.New("description must be at most 50 characters")
)

// ValidationError reports that a value was refused for a single field.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

// IsValidation reports whether err carries a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
