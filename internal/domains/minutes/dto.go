package minutes

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	datePattern      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRangePattern = regexp.MustCompile(`^\d{2}:\d{2}\s*~\s*\d{2}:\d{2}$`)
)

// ManualAttendee is an outside participant entered by hand instead of
// picked from the roster selector.
type ManualAttendee struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Rank       string `json:"rank"`
}

// SubmitRequest submits a new meeting record through the save wizard.
//
// Resolution semantics:
//   - "" asks: the service checks for a date collision and answers
//     with a pending wizard state instead of writing.
//   - "confirm" appends after the no-duplicate confirmation.
//   - "overwrite"/"append" resolve a reported duplicate.
//   - "abort" discards the submission.
type SubmitRequest struct {
	Date           string          `json:"date" binding:"required"`
	TimeRange      string          `json:"time_range" binding:"required"`
	Place          string          `json:"place" binding:"required"`
	Topic          string          `json:"topic" binding:"required"`
	SelectedLabels []string        `json:"selected_labels"`
	Manual         *ManualAttendee `json:"manual,omitempty"`
	Content        string          `json:"content" binding:"required"`
	Keywords       string          `json:"keywords"`
	Resolution     string          `json:"resolution,omitempty"`
}

func (r SubmitRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Date,
			validation.Required.Error("date is required"),
			validation.Match(datePattern).Error("date must be YYYY-MM-DD"),
		),
		validation.Field(&r.TimeRange,
			validation.Required.Error("time range is required"),
			validation.Match(timeRangePattern).Error("time range must be HH:MM ~ HH:MM"),
		),
		validation.Field(&r.Place, validation.Required.Error("place is required")),
		validation.Field(&r.Topic, validation.Required.Error("topic is required")),
		validation.Field(&r.Content, validation.Required.Error("content is required")),
		validation.Field(&r.Resolution,
			validation.In("", "confirm", "overwrite", "append", "abort").
				Error("resolution must be confirm, overwrite, append or abort"),
		),
	)
}

// SubmitOutcome is the serializable result of one wizard interaction.
type SubmitOutcome struct {
	Wizard Wizard   `json:"wizard"`
	Saved  *Minutes `json:"saved,omitempty"`
}

// UpdateRequest edits an existing record by ID. Attendee-less edits
// keep the stored attendee columns; a nil Keywords pointer keeps the
// stored keyword text (carry-forward unless explicitly changed).
type UpdateRequest struct {
	Date           string          `json:"date" binding:"required"`
	TimeRange      string          `json:"time_range" binding:"required"`
	Place          string          `json:"place" binding:"required"`
	Topic          string          `json:"topic" binding:"required"`
	SelectedLabels []string        `json:"selected_labels"`
	Manual         *ManualAttendee `json:"manual,omitempty"`
	Content        string          `json:"content" binding:"required"`
	Keywords       *string         `json:"keywords,omitempty"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Date,
			validation.Required.Error("date is required"),
			validation.Match(datePattern).Error("date must be YYYY-MM-DD"),
		),
		validation.Field(&r.TimeRange,
			validation.Required.Error("time range is required"),
			validation.Match(timeRangePattern).Error("time range must be HH:MM ~ HH:MM"),
		),
		validation.Field(&r.Place, validation.Required.Error("place is required")),
		validation.Field(&r.Topic, validation.Required.Error("topic is required")),
		validation.Field(&r.Content, validation.Required.Error("content is required")),
	)
}

// DraftRequest asks the composer for an AI draft of the minutes body.
type DraftRequest struct {
	Topic    string `json:"topic" binding:"required"`
	Keywords string `json:"keywords"`
}

func (r DraftRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Topic, validation.Required.Error("topic is required")),
	)
}

// DraftResponse carries the drafted (or placeholder) text.
type DraftResponse struct {
	Content     string `json:"content"`
	Placeholder bool   `json:"placeholder"`
}

// SearchField selects which columns a search query runs against.
type SearchField string

const (
	SearchAll     SearchField = "all"
	SearchName    SearchField = "name"
	SearchDept    SearchField = "department"
	SearchTopic   SearchField = "topic"
	SearchContent SearchField = "content"
)

// IsValid checks if the search field is a recognized value
func (f SearchField) IsValid() bool {
	switch f {
	case SearchAll, SearchName, SearchDept, SearchTopic, SearchContent:
		return true
	}
	return false
}
