package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"minutes-backend/internal/domains/minutes"
	"minutes-backend/internal/infrastructure/ai"
)

// minutesService implements minutes.Service
type minutesService struct {
	repo     minutes.Repository
	composer minutes.DraftComposer

	// now is swappable in tests; record IDs derive from it.
	now func() time.Time
}

// NewMinutesService creates a new minutes service instance
func NewMinutesService(repo minutes.Repository, composer minutes.DraftComposer) minutes.Service {
	return &minutesService{
		repo:     repo,
		composer: composer,
		now:      time.Now,
	}
}

func (s *minutesService) List(ctx context.Context) ([]minutes.Minutes, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sortByDateDesc(records)
	return records, nil
}

func (s *minutesService) Search(ctx context.Context, field minutes.SearchField, query string) ([]minutes.Minutes, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(query) == "" {
		return []minutes.Minutes{}, nil
	}

	matched := make([]minutes.Minutes, 0, len(records))
	for _, rec := range records {
		if matches(rec, field, query) {
			matched = append(matched, rec)
		}
	}
	sortByDateDesc(matched)
	return matched, nil
}

func matches(rec minutes.Minutes, field minutes.SearchField, query string) bool {
	switch field {
	case minutes.SearchName, minutes.SearchDept:
		// Both name and department live in the attendee display text.
		return strings.Contains(rec.AttendeeText, query)
	case minutes.SearchTopic:
		return strings.Contains(rec.Topic, query)
	case minutes.SearchContent:
		return strings.Contains(rec.Content, query)
	default:
		return strings.Contains(rec.Topic, query) ||
			strings.Contains(rec.AttendeeText, query) ||
			strings.Contains(rec.Content, query)
	}
}

func (s *minutesService) GetByID(ctx context.Context, id string) (*minutes.Minutes, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, minutes.ErrMinutesNotFound
	}
	return rec, nil
}

// Submit drives the save wizard. With an empty resolution it only
// reports where the wizard lands (duplicate check or confirmation);
// nothing is written until the caller re-submits with a resolution.
func (s *minutesService) Submit(ctx context.Context, req *minutes.SubmitRequest) (*minutes.SubmitOutcome, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	attendees := minutes.BuildAttendees(req.SelectedLabels, manualAttendee(req.Manual))
	if len(attendees) == 0 {
		return nil, minutes.ErrNoAttendees
	}

	text, jsonText, err := minutes.EncodeAttendees(attendees)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	record := minutes.Minutes{
		ID:           minutes.NewID(s.now()),
		SeqNo:        len(records) + 1,
		Date:         req.Date,
		TimeRange:    normalizeTimeRange(req.TimeRange),
		Place:        strings.TrimSpace(req.Place),
		Topic:        strings.TrimSpace(req.Topic),
		AttendeeText: text,
		AttendeeJSON: jsonText,
		Content:      req.Content,
		Keywords:     req.Keywords,
	}

	hasDuplicate := false
	for _, rec := range records {
		if rec.Date == record.Date {
			hasDuplicate = true
			break
		}
	}

	wizard, err := minutes.NewWizard().Submit(record, hasDuplicate)
	if err != nil {
		return nil, err
	}

	switch req.Resolution {
	case "":
		// Pending: report the wizard state, write nothing.
		return &minutes.SubmitOutcome{Wizard: wizard}, nil

	case "abort":
		if hasDuplicate {
			wizard, _, err = wizard.Resolve(minutes.ResolutionAbort)
		} else {
			wizard, _, err = wizard.Confirm(false)
		}
		if err != nil {
			return nil, err
		}
		return &minutes.SubmitOutcome{Wizard: wizard}, nil

	case "confirm":
		next, write, err := wizard.Confirm(true)
		if err != nil {
			return nil, err
		}
		if write {
			if err := s.repo.Append(ctx, record); err != nil {
				return nil, err
			}
		}
		return &minutes.SubmitOutcome{Wizard: next, Saved: &record}, nil

	case "overwrite", "append":
		next, write, err := wizard.Resolve(minutes.Resolution(req.Resolution))
		if err != nil {
			return nil, err
		}
		if write {
			if req.Resolution == "overwrite" {
				err = s.repo.UpdateByDate(ctx, record.Date, record)
			} else {
				err = s.repo.Append(ctx, record)
			}
			if err != nil {
				return nil, err
			}
		}
		return &minutes.SubmitOutcome{Wizard: next, Saved: &record}, nil

	default:
		return nil, fmt.Errorf("%w: unknown resolution %q", minutes.ErrInvalidTransition, req.Resolution)
	}
}

// Update edits a record in place. Two policies apply:
//   - attendee guard: an edit that parses to zero attendees keeps the
//     stored attendee text and JSON, so edits never silently erase an
//     attendee list;
//   - keyword carry-forward: the stored keyword text survives unless
//     the request explicitly supplies a replacement.
func (s *minutesService) Update(ctx context.Context, id string, req *minutes.UpdateRequest) (*minutes.Minutes, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, minutes.ErrMinutesNotFound
	}

	attendeeText := existing.AttendeeText
	attendeeJSON := existing.AttendeeJSON
	if attendees := minutes.BuildAttendees(req.SelectedLabels, manualAttendee(req.Manual)); len(attendees) > 0 {
		attendeeText, attendeeJSON, err = minutes.EncodeAttendees(attendees)
		if err != nil {
			return nil, err
		}
	}

	keywords := existing.Keywords
	if req.Keywords != nil {
		keywords = *req.Keywords
	}

	updated := minutes.Minutes{
		ID:           existing.ID,
		SeqNo:        existing.SeqNo,
		Date:         req.Date,
		TimeRange:    normalizeTimeRange(req.TimeRange),
		Place:        strings.TrimSpace(req.Place),
		Topic:        strings.TrimSpace(req.Topic),
		AttendeeText: attendeeText,
		AttendeeJSON: attendeeJSON,
		Content:      req.Content,
		Keywords:     keywords,
	}

	if err := s.repo.UpdateByID(ctx, id, updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *minutesService) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}

// Draft never fails: a broken generative call yields a marked
// placeholder so the caller can still type the body manually.
func (s *minutesService) Draft(ctx context.Context, req *minutes.DraftRequest) (*minutes.DraftResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	content := s.composer.Draft(ctx, strings.TrimSpace(req.Topic), req.Keywords)
	return &minutes.DraftResponse{
		Content:     content,
		Placeholder: ai.IsPlaceholder(content),
	}, nil
}

func manualAttendee(m *minutes.ManualAttendee) *minutes.Attendee {
	if m == nil {
		return nil
	}
	return &minutes.Attendee{
		Name:       strings.TrimSpace(m.Name),
		Department: strings.TrimSpace(m.Department),
		Rank:       strings.TrimSpace(m.Rank),
	}
}

// normalizeTimeRange settles the spacing around the range separator to
// the canonical "HH:MM ~ HH:MM".
func normalizeTimeRange(tr string) string {
	start, end, found := strings.Cut(tr, "~")
	if !found {
		return strings.TrimSpace(tr)
	}
	return fmt.Sprintf("%s ~ %s", strings.TrimSpace(start), strings.TrimSpace(end))
}

func sortByDateDesc(records []minutes.Minutes) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date > records[j].Date
		}
		return records[i].ID > records[j].ID
	})
}
