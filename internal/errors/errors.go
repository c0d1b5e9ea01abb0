package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrTruckNotFound is returned when a food truck is not found.
	ErrTruckNotFound = errors.New("food truck not found")
	// ErrQuoteNotFound is returned when a quote request is not found.
	ErrQuoteNotFound = errors.New("quote request not found")
	// ErrMessageNotFound is returned when a contact message is not found.
	ErrMessageNotFound = errors.New("contact message not found")
	// ErrInvalidStatus is returned when a quote status is not one of the
	// enumerated values.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Backend failures
// collapse to a generic 500: internal detail is logged server-side,
// never sent to the client.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrTruckNotFound),
		errors.Is(err, ErrQuoteNotFound),
		errors.Is(err, ErrMessageNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidStatus):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
