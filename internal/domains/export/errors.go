package export

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// ErrNothingToExport occurs when the selected dates match no
	// stored meeting.
	ErrNothingToExport = errors.New("no meetings match the selected dates")

	// ErrRenderFailed wraps a renderer failure.
	ErrRenderFailed = errors.New("export rendering failed")
)

// GetHTTPStatusCode maps a domain error to an HTTP status code.
func GetHTTPStatusCode(err error) int {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest
	}

	switch {
	case errors.Is(err, ErrNothingToExport):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
