package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrTokenNotValid = errors.New("token is not valid")
	ErrTokenExpired  = errors.New("token is expired")

	ErrNotAuthorized = errors.New("not authorized")
)

// ValidationError marks input that is malformed or semantically invalid
// for the requested transition. Surfaced as 400.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) ValidationError {
	return ValidationError{
		Message: fmt.Sprintf(format, args...),
	}
}
