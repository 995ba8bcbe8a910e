package core

import "errors"

// Failure kinds. Every error returned by Hirebox that is not one of these is
// an internal failure.
var (
	ErrValidation   error = errors.New("validation failed")
	ErrConflict     error = errors.New("conflict")
	ErrUnauthorized error = errors.New("unauthorized")
	ErrForbidden    error = errors.New("forbidden")
)

var (
	ErrMissingCredentials error = NewError(ErrValidation, "email and password are required")
	ErrPasswordTooLong    error = NewError(ErrValidation, "password is too long")
	ErrInvalidPayload     error = NewError(ErrValidation, "payload is not valid JSON")
	ErrUserExists         error = NewError(ErrConflict, "user exists")
	ErrUserNotFound       error = NewError(ErrUnauthorized, "no such user")
	ErrIncorrectPassword  error = NewError(ErrUnauthorized, "wrong password")
	ErrInvalidToken       error = NewError(ErrUnauthorized, "unauthorized")
	ErrInsufficientRole   error = NewError(ErrForbidden, "forbidden")
)

// Error carries a message that is safe to return to clients. Unwrap yields
// its kind, so errors.Is(err, ErrConflict) holds for ErrUserExists.
type Error struct {
	Kind    error
	Message string
}

func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}
