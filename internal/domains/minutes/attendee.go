package minutes

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Attendee is one structured attendee record. JSON keys match the
// spreadsheet's side column so existing documents decode unchanged.
type Attendee struct {
	Name       string `json:"이름"`
	Department string `json:"학과"`
	Rank       string `json:"직급"`
}

// ParseLabel parses a selector label of the form "Name (Dept/Rank)".
// The second return value is false for malformed labels; callers skip
// those rather than failing the whole batch.
func ParseLabel(label string) (Attendee, bool) {
	name, info, found := strings.Cut(label, " (")
	if !found || !strings.HasSuffix(info, ")") {
		return Attendee{}, false
	}
	info = strings.TrimSuffix(info, ")")

	dept, rank, found := strings.Cut(info, "/")
	if !found {
		return Attendee{}, false
	}

	return Attendee{Name: name, Department: dept, Rank: rank}, true
}

// BuildAttendees parses the selected labels, skipping malformed ones,
// and appends the optional manually entered attendee.
func BuildAttendees(labels []string, manual *Attendee) []Attendee {
	attendees := make([]Attendee, 0, len(labels)+1)
	for _, label := range labels {
		if a, ok := ParseLabel(label); ok {
			attendees = append(attendees, a)
		}
	}
	if manual != nil && manual.Name != "" {
		attendees = append(attendees, *manual)
	}
	return attendees
}

// EncodeAttendees produces the two parallel representations that must
// always be written together: the display text "Name(Dept), ..." and
// the JSON side column.
func EncodeAttendees(attendees []Attendee) (text string, jsonText string, err error) {
	parts := make([]string, len(attendees))
	for i, a := range attendees {
		parts[i] = fmt.Sprintf("%s(%s)", a.Name, a.Department)
	}

	raw, err := json.Marshal(attendees)
	if err != nil {
		return "", "", fmt.Errorf("encode attendees: %w", err)
	}

	return strings.Join(parts, ", "), string(raw), nil
}

// DecodeAttendees parses the JSON side column back into structures.
func DecodeAttendees(jsonText string) ([]Attendee, error) {
	if strings.TrimSpace(jsonText) == "" {
		return nil, nil
	}

	var attendees []Attendee
	if err := json.Unmarshal([]byte(jsonText), &attendees); err != nil {
		return nil, fmt.Errorf("decode attendees: %w", err)
	}
	return attendees, nil
}

// MatchOptions pre-selects the selector labels matching the stored
// attendees, by prefix on "Name (Department". Attendees without a
// matching label (outside members, renamed departments) are dropped
// from the selection but survive in the stored record.
func MatchOptions(attendees []Attendee, options []string) []string {
	selected := make([]string, 0, len(attendees))
	for _, a := range attendees {
		prefix := fmt.Sprintf("%s (%s", a.Name, a.Department)
		for _, opt := range options {
			if strings.HasPrefix(opt, prefix) {
				selected = append(selected, opt)
				break
			}
		}
	}
	return selected
}
