package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"foodtruck/internal/errors"
	"foodtruck/internal/query"
)

// Envelope is the JSON wrapper returned by every endpoint.
type Envelope struct {
	Success    bool              `json:"success"`
	Data       interface{}       `json:"data,omitempty"`
	Message    string            `json:"message,omitempty"`
	Error      string            `json:"error,omitempty"`
	Pagination *query.Pagination `json:"pagination,omitempty"`
}

// OK wraps data in a success envelope.
func OK(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

// Page wraps one page of data with its pagination block.
func Page(data interface{}, p query.Pagination) Envelope {
	return Envelope{Success: true, Data: data, Pagination: &p}
}

// Fail wraps an error message.
func Fail(msg string) Envelope {
	return Envelope{Success: false, Error: msg}
}

// respondError maps a service error to its HTTP response. Unmapped
// errors are backend failures: the detail is logged and the client
// gets a generic 500.
func respondError(c echo.Context, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		logrus.WithError(err).WithField("path", c.Path()).Error("request failed")
	}
	return c.JSON(httpErr.StatusCode, Fail(httpErr.Message))
}

// parseID parses a numeric path id.
func parseID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
