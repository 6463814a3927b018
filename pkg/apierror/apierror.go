package apierror

import (
	"fmt"
	"net/http"
)

type APIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	HTTPStatus int    `json:"-"`
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}

	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code string, message string, details string, status int) *APIError {
	return &APIError{Code: code, Message: message, Details: details, HTTPStatus: status}
}

// Validation covers missing or malformed request fields.
func Validation(message string, details string) *APIError {
	return New("VALIDATION_ERROR", message, details, http.StatusBadRequest)
}

// InvalidInput covers operands that cannot be coerced to numbers.
func InvalidInput(message string, details string) *APIError {
	return New("INVALID_INPUT", message, details, http.StatusBadRequest)
}

func NotAuthorized(message string) *APIError {
	return New("NOT_AUTHORIZED", message, "", http.StatusForbidden)
}
