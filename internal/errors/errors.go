// Package errors defines the three failure kinds the service distinguishes:
// the external model being unreachable or unusable, the record store failing,
// and the caller sending a malformed request.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// GatewayError wraps a failure of the language-model gateway: timeout, auth,
// rate limit, or a malformed response.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s: gateway: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// NewGateway wraps err as a GatewayError tagged with the failing operation.
func NewGateway(op string, err error) *GatewayError {
	return &GatewayError{Op: op, Err: err}
}

// StoreError wraps a persistence failure.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: store: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// NewStore wraps err as a StoreError tagged with the failing operation.
func NewStore(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

// ValidationError reports a caller-supplied value with an invalid shape.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidation creates a ValidationError for the given field.
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// HTTPStatus maps an error to the status code handlers should respond with.
func HTTPStatus(err error) int {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest
	}
	var ge *GatewayError
	if errors.As(err, &ge) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
