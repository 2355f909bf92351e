package classifier

import (
	"errors"
	"net/http"

	"github.com/linnaea/pathclass/internal/pathways"
)

// MapHTTPStatus maps classifier domain errors to HTTP status codes. Anything
// unrecognized is an internal fault, the only user-visible failure class
// beyond malformed input.
func MapHTTPStatus(err error) int {
	if errors.Is(err, pathways.ErrEmptyInput) ||
		errors.Is(err, pathways.ErrMissingHeader) ||
		errors.Is(err, pathways.ErrBadHeader) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
