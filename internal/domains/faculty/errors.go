package faculty

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// ErrMemberNotFound occurs when no roster entry matches the
	// requested sequence number.
	ErrMemberNotFound = errors.New("faculty member not found")

	// ErrStoreUnavailable wraps transient spreadsheet failures. The
	// operation is a no-op; the user should retry.
	ErrStoreUnavailable = errors.New("spreadsheet store unavailable, please retry")
)

// GetHTTPStatusCode maps a domain error to an HTTP status code.
func GetHTTPStatusCode(err error) int {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest
	}

	switch {
	case errors.Is(err, ErrMemberNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
