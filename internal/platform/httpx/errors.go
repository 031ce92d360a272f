// Package httpx provides HTTP response utilities.
package httpx

import (
	"errors"
	"net/http"

	"github.com/acme-dashboard/acme-dashboard/internal/shared"
)

// Sentinel errors for the HTTP layer.
var (
	ErrNotFound   = errors.New("resource not found")
	ErrValidation = errors.New("validation failed")
)

// RespondError maps domain errors to HTTP responses using RFC7807.
// Data-access failures surface only their operation-level message; the
// underlying cause stays in the logs.
func RespondError(w http.ResponseWriter, err error) {
	var dae *shared.DataAccessError
	switch {
	case errors.As(err, &dae):
		Problem(w, http.StatusInternalServerError, "Data Access Error", dae.Error())
	case errors.Is(err, ErrNotFound):
		Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, ErrValidation):
		Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
