package minutes

import (
	"time"
)

// Minutes is one meeting record. The ID is timestamp-derived, assigned
// once at creation, and is the only reliable key for update/delete:
// dates are expected to collide and get reconciled explicitly.
type Minutes struct {
	ID           string `json:"id"`
	SeqNo        int    `json:"seq_no"` // positional, informational only
	Date         string `json:"date"`   // YYYY-MM-DD
	TimeRange    string `json:"time_range"`
	Place        string `json:"place"`
	Topic        string `json:"topic"`
	AttendeeText string `json:"attendee_text"`
	AttendeeJSON string `json:"attendee_json"`
	Content      string `json:"content"`
	Keywords     string `json:"keywords"` // provenance of the AI draft
}

// DateLayout is the canonical calendar-date format for the date column.
const DateLayout = "2006-01-02"

// NewID derives a record identifier from the creation instant.
func NewID(now time.Time) string {
	return now.Format("20060102150405")
}

// Attendees decodes the structured attendee list. A malformed JSON
// column yields an empty list, mirroring the read-path degradation of
// the rest of the record mapper.
func (m Minutes) Attendees() []Attendee {
	attendees, err := DecodeAttendees(m.AttendeeJSON)
	if err != nil {
		return nil
	}
	return attendees
}
