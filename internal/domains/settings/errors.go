package settings

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// ErrInvalidPassword occurs when a login password matches neither
	// the admin nor the user password.
	ErrInvalidPassword = errors.New("invalid password")

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
	case errors.Is(err, ErrInvalidPassword):
		return http.StatusUnauthorized
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
