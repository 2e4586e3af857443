package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/csm-portfolio/internal/contact"
)

// ErrMetricNotFound indicates no metric has the requested id
type ErrMetricNotFound struct {
	ID string
}

func (e *ErrMetricNotFound) Error() string {
	return fmt.Sprintf("metric not found: %s", e.ID)
}

// ErrInvalidParameter indicates a query parameter could not be used
type ErrInvalidParameter struct {
	Name    string
	Value   string
	Message string
}

func (e *ErrInvalidParameter) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Name, e.Value, e.Message)
}

// ErrMalformedBody indicates the request body is not the expected JSON
type ErrMalformedBody struct {
	Cause error
}

func (e *ErrMalformedBody) Error() string {
	return fmt.Sprintf("malformed request body: %v", e.Cause)
}

func (e *ErrMalformedBody) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		notFound   *ErrMetricNotFound
		invalid    *ErrInvalidParameter
		malformed  *ErrMalformedBody
		validation *contact.ValidationError
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &invalid), errors.As(err, &malformed), errors.As(err, &validation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps err to a status and writes it; internal errors are logged and not echoed.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.logger.WithError(err).WithField("request_id", requestID(r.Context())).Error("request failed")
		s.errorResponse(w, status, "internal server error")
		return
	}
	s.errorResponse(w, status, err.Error())
}
