package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/jonathan/csm-portfolio/internal/contact"
	"github.com/jonathan/csm-portfolio/internal/types"
)

// maxContactBodyBytes caps the contact form payload
const maxContactBodyBytes = 16 << 10

// contactValidationResponse reports the outcome of a contact form check
type contactValidationResponse struct {
	Valid      bool                  `json:"valid"`
	Errors     []contact.FieldError  `json:"errors,omitempty"`
	Normalized *types.ContactMessage `json:"normalized,omitempty"`
}

// handleValidateContact handles POST /api/contact/validate.
// Nothing is sent or stored; the handler only reports whether the submission is acceptable.
func (s *Server) handleValidateContact(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxContactBodyBytes))
	if err != nil {
		s.writeError(w, r, &ErrMalformedBody{Cause: err})
		return
	}

	msg, err := contact.Decode(raw)
	if err != nil {
		s.writeError(w, r, &ErrMalformedBody{Cause: err})
		return
	}

	msg = contact.Normalize(msg)
	err = contact.Validate(msg)

	var validationErr *contact.ValidationError
	switch {
	case err == nil:
		s.jsonResponse(w, http.StatusOK, contactValidationResponse{Valid: true, Normalized: &msg})
	case errors.As(err, &validationErr):
		s.jsonResponse(w, HTTPStatus(err), contactValidationResponse{Errors: validationErr.Errors})
	default:
		s.writeError(w, r, err)
	}
}
