// Package errors provides standardized error handling for the prediction pipeline.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Model lifecycle errors.
	ErrCodeModelLoadFailed  ErrorCode = "MODEL_LOAD_FAILED"
	ErrCodeModelUnavailable ErrorCode = "MODEL_UNAVAILABLE"

	// Per-request errors.
	ErrCodeInputValidationFailed ErrorCode = "INPUT_VALIDATION_FAILED"
	ErrCodeInferenceFailed       ErrorCode = "INFERENCE_FAILED"
	ErrCodeUnknownApplication    ErrorCode = "UNKNOWN_APPLICATION"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewModelLoadFailedError reports a missing or corrupt model artifact.
// Non-retryable: the app runs with prediction disabled for this process.
func NewModelLoadFailedError(path string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeModelLoadFailed,
		Message:   "Error loading model",
		Details:   fmt.Sprintf("path: %s, error: %s", path, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewModelUnavailableError is returned when prediction is requested but no
// model handle was loaded at startup.
func NewModelUnavailableError(app string) *StandardError {
	return &StandardError{
		Code:      ErrCodeModelUnavailable,
		Message:   "Prediction unavailable: model not loaded",
		Details:   fmt.Sprintf("app: %s", app),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInputValidationFailedError reports out-of-bounds or malformed input.
func NewInputValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInputValidationFailed,
		Message:   "Input validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInferenceFailedError reports a model invocation error. Retryable: the
// user may resubmit with corrected input.
func NewInferenceFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInferenceFailed,
		Message:   "Error making prediction",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnknownApplicationError reports a request for an unregistered app.
func NewUnknownApplicationError(app string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnknownApplication,
		Message:   "Unknown application",
		Details:   fmt.Sprintf("app: %s", app),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// HTTPStatus maps error codes to HTTP response status codes.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeModelUnavailable:
		return http.StatusServiceUnavailable
	case ErrCodeInputValidationFailed:
		return http.StatusUnprocessableEntity
	case ErrCodeInferenceFailed:
		return http.StatusBadGateway
	case ErrCodeUnknownApplication:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// AsStandardError unwraps err into a StandardError, or wraps it as an
// inference failure when it is something else.
func AsStandardError(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return NewInferenceFailedError(err)
}
