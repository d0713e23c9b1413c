package export

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Request selects which meetings to export. An empty date list exports
// every stored meeting.
type Request struct {
	Dates []string `json:"dates"`
}

// Validate validates the export request
func (r Request) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Dates, validation.Each(validation.Match(datePattern))),
	)
}
