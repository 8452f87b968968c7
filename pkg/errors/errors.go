package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode represents a unique error code
type ErrorCode int

// Error codes for the failure kinds handlers need to tell apart.
const (
	ErrUserNotFound ErrorCode = iota + 1000
	ErrBadPassword
	ErrUnauthenticated
	ErrWrongRole
	ErrValidation
	ErrNotFound
	ErrInternal
)

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode maps the error kind to the HTTP status surfaced to the caller.
// Both credential failures map to 401; the code still tells them apart for
// callers that care.
func (e *AppError) StatusCode() int {
	switch e.Code {
	case ErrUserNotFound, ErrBadPassword, ErrUnauthenticated:
		return http.StatusUnauthorized
	case ErrWrongRole:
		return http.StatusForbidden
	case ErrValidation:
		return http.StatusBadRequest
	case ErrNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error constructors
func NewUserNotFound(login string) *AppError {
	return &AppError{
		Code:    ErrUserNotFound,
		Message: fmt.Sprintf("no user with login %q", login),
	}
}

func NewBadPassword() *AppError {
	return &AppError{
		Code:    ErrBadPassword,
		Message: "incorrect password",
	}
}

func NewUnauthenticated() *AppError {
	return &AppError{
		Code:    ErrUnauthenticated,
		Message: "authentication required",
	}
}

func NewWrongRole() *AppError {
	return &AppError{
		Code:    ErrWrongRole,
		Message: "access denied",
	}
}

func NewValidation(message string, err error) *AppError {
	return &AppError{
		Code:    ErrValidation,
		Message: message,
		Err:     err,
	}
}

func NewNotFound(resource string) *AppError {
	return &AppError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func NewInternal(err error) *AppError {
	return &AppError{
		Code:    ErrInternal,
		Message: "internal server error",
		Err:     err,
	}
}

// IsCode reports whether err is an AppError carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Code == code
}
