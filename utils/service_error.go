// File: utils/service_error.go
package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// Service error codes. Validation and not-found errors surface directly to
// the caller; conflicts tell the guest to pick another slot; provider errors
// surface as a generic failure while the cause is logged for operators.
const (
	CodeNotFound     = "NOT_FOUND"
	CodeForbidden    = "FORBIDDEN"
	CodeValidation   = "VALIDATION_ERROR"
	CodeConflict     = "CONFLICT"
	CodeProviderAuth = "PROVIDER_AUTH_ERROR"
	CodeProviderSync = "PROVIDER_SYNC_ERROR"
)

// ServiceError is a tagged, expected failure of a service operation.
type ServiceError struct {
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotFoundError(msg string) error {
	return &ServiceError{Code: CodeNotFound, Message: msg}
}

func NewForbiddenError(msg string) error {
	return &ServiceError{Code: CodeForbidden, Message: msg}
}

func NewValidationError(msg string) error {
	return &ServiceError{Code: CodeValidation, Message: msg}
}

func NewConflictError(msg string) error {
	return &ServiceError{Code: CodeConflict, Message: msg}
}

func NewProviderAuthError(msg string) error {
	return &ServiceError{Code: CodeProviderAuth, Message: msg}
}

func NewProviderSyncError(msg string) error {
	return &ServiceError{Code: CodeProviderSync, Message: msg}
}

// HasErrorCode reports whether err is a ServiceError carrying the given code.
func HasErrorCode(err error, code string) bool {
	var se *ServiceError
	return errors.As(err, &se) && se.Code == code
}

// HTTPStatusForError maps a service error to its HTTP status. Provider
// failures map to 502: the operation aborted with no partial state and the
// precise cause is in the logs.
func HTTPStatusForError(err error) int {
	var se *ServiceError
	if !errors.As(err, &se) {
		return http.StatusInternalServerError
	}
	switch se.Code {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeForbidden:
		return http.StatusForbidden
	case CodeValidation:
		return http.StatusBadRequest
	case CodeConflict:
		return http.StatusConflict
	case CodeProviderAuth, CodeProviderSync:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
