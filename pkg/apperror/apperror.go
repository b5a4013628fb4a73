// Package apperror defines the error type carried from usecases to the HTTP
// edge. Every error that is not an *Error is reported as an internal failure.
package apperror

import (
	"errors"
	"net/http"
)

// Error is a domain error with a stable machine-readable code.
type Error struct {
	Status  int
	Code    string
	Message string
	Details interface{}
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

// Is matches on status and code so that copies carrying details still
// compare equal to the sentinel they were derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Status == t.Status && e.Code == t.Code
}

// WithDetails returns a copy of e carrying details.
func (e *Error) WithDetails(details interface{}) *Error {
	cp := *e
	cp.Details = details
	return &cp
}

func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

func BadRequest(code, message string) *Error {
	return New(http.StatusBadRequest, code, message)
}

func Unauthorized(code, message string) *Error {
	return New(http.StatusUnauthorized, code, message)
}

func NotFound(code, message string) *Error {
	return New(http.StatusNotFound, code, message)
}

// Common errors shared across packages.
var (
	ErrAccessDenied   = Unauthorized("ACCESS_DENIED", "Authentication is required to access this resource")
	ErrMissingToken   = Unauthorized("ACCESS_DENIED", "Authentication token was not provided")
	ErrInvalidToken   = Unauthorized("INVALID_TOKEN", "Authentication token is invalid or expired")
	ErrUserIDNotFound = Unauthorized("USER_ID_NOT_FOUND", "User ID was not found")
	ErrValidation     = BadRequest("VALIDATION_ERROR", "Request validation failed")
	ErrTooManyRequest = New(http.StatusTooManyRequests, "TOO_MANY_REQUESTS", "Too many requests, try again later")
	ErrRouteNotFound  = NotFound("NOT_FOUND", "Route not found")
	ErrMethodNotAllow = New(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
	ErrInternal       = New(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "An internal server error occurred")
)

// Validation returns a VALIDATION_ERROR carrying field-level details.
func Validation(details interface{}) *Error {
	return ErrValidation.WithDetails(details)
}

// From unwraps err into an *Error, falling back to ErrInternal.
func From(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return ErrInternal, false
}
