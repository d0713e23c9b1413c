package minutes

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// ErrMinutesNotFound occurs when no record matches the requested ID.
	ErrMinutesNotFound = errors.New("minutes record not found")

	// ErrNoAttendees occurs when a fresh submission parses to zero
	// attendees. Edits are different: there the previous attendee
	// columns are kept instead.
	ErrNoAttendees = errors.New("at least one attendee is required")

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
	case errors.Is(err, ErrMinutesNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNoAttendees):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
