package xivapi

import (
	"encoding/json"
	"fmt"
)

// ValidationError reports bad input that was rejected before any network
// call was made.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// APIError represents a non-success response from XIVAPI
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("xivapi error: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// apiErrorBody is the error envelope XIVAPI returns alongside non-2xx statuses.
type apiErrorBody struct {
	Error   bool   `json:"Error"`
	Subject string `json:"Subject"`
	Message string `json:"Message"`
}

func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Body:       string(body),
	}

	// Prefer the remote error message when the body carries one.
	var envelope apiErrorBody
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		apiErr.Message = envelope.Message
		return apiErr
	}

	switch statusCode {
	case 400:
		apiErr.Message = "request was bad, please check your parameters"
	case 401:
		apiErr.Message = "request was refused, possibly due to an invalid API key"
	case 404:
		apiErr.Message = "resource not found"
	case 500:
		apiErr.Message = "an internal server error has occurred on XIVAPI"
	case 503:
		apiErr.Message = "service is unavailable, the Lodestone may be under maintenance"
	default:
		apiErr.Message = "unexpected response status"
	}

	return apiErr
}

// DecodeError indicates a response body that could not be parsed as the
// expected JSON shape.
type DecodeError struct {
	Err error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response: %v", e.Err)
}

// Unwrap returns the underlying cause
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TransportError indicates a network-level failure from the underlying
// HTTP client. The original cause is preserved and can be inspected with
// errors.Is/errors.As.
type TransportError struct {
	Err error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

// Unwrap returns the underlying cause
func (e *TransportError) Unwrap() error {
	return e.Err
}
