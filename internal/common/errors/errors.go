// Package errors provides standardized error handling for the carrier sales API.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeLoadNotFound    ErrorCode = "LOAD_NOT_FOUND"
	ErrCodeCarrierNotFound ErrorCode = "CARRIER_NOT_FOUND"
	ErrCodeInvalidInput    ErrorCode = "INVALID_INPUT"

	ErrCodeRegistryUnavailable ErrorCode = "REGISTRY_UNAVAILABLE"
	ErrCodeRegistryMalformed   ErrorCode = "REGISTRY_MALFORMED"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// APIError represents a structured application error that maps onto an HTTP
// response. Upstream registry failures are kept distinct from not-found so the
// caller can tell "no such carrier" apart from "could not ask".
type APIError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("APIError[%s]: %s", e.Code, e.Message)
}

// HTTPStatus maps the error code to its HTTP status.
func (e *APIError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeLoadNotFound, ErrCodeCarrierNotFound:
		return http.StatusNotFound
	case ErrCodeInvalidInput:
		return http.StatusBadRequest
	case ErrCodeRegistryUnavailable, ErrCodeRegistryMalformed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ==========================
// 2. Error Constructors
// ==========================

// NewLoadNotFoundError reports that no load matches the given reference.
func NewLoadNotFoundError(reference string) *APIError {
	return &APIError{
		Code:      ErrCodeLoadNotFound,
		Message:   "Load not found",
		Details:   fmt.Sprintf("reference_number: %s", reference),
		Timestamp: time.Now().UTC(),
	}
}

// NewCarrierNotFoundError reports that the registry has no matching carrier.
func NewCarrierNotFoundError(mcNumber string) *APIError {
	return &APIError{
		Code:      ErrCodeCarrierNotFound,
		Message:   "Carrier not found in registry",
		Details:   fmt.Sprintf("mc_number: %s", mcNumber),
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidInputError reports a missing or malformed request field.
func NewInvalidInputError(details string) *APIError {
	return &APIError{
		Code:      ErrCodeInvalidInput,
		Message:   "Invalid request input",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewRegistryUnavailableError reports that the carrier registry could not be
// reached. Never converted to a "not verified" response.
func NewRegistryUnavailableError(err error) *APIError {
	return &APIError{
		Code:      ErrCodeRegistryUnavailable,
		Message:   "Carrier registry unavailable",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// NewRegistryMalformedError reports that the registry answered with a body we
// could not interpret.
func NewRegistryMalformedError(err error) *APIError {
	return &APIError{
		Code:      ErrCodeRegistryMalformed,
		Message:   "Carrier registry returned malformed data",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError wraps an unexpected failure.
func NewInternalError(err error) *APIError {
	return &APIError{
		Code:      ErrCodeInternal,
		Message:   "Internal server error",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// AsAPIError extracts an *APIError from err, or wraps err as an internal error.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return NewInternalError(err)
}

// IsNotFound reports whether the error is one of the not-found codes.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code == ErrCodeLoadNotFound || apiErr.Code == ErrCodeCarrierNotFound
}
