package minutes

import "context"

// Service is the minutes business logic contract.
type Service interface {
	// List returns all records sorted by date, newest first.
	List(ctx context.Context) ([]Minutes, error)

	// Search filters records by a query over the chosen field set and
	// returns them newest first.
	Search(ctx context.Context, field SearchField, query string) ([]Minutes, error)

	GetByID(ctx context.Context, id string) (*Minutes, error)

	// Submit drives the save wizard for a new record. See
	// SubmitRequest for the resolution semantics.
	Submit(ctx context.Context, req *SubmitRequest) (*SubmitOutcome, error)

	// Update edits a record by ID, honoring the attendee guard and the
	// keyword carry-forward policy.
	Update(ctx context.Context, id string, req *UpdateRequest) (*Minutes, error)

	Delete(ctx context.Context, id string) error

	// Draft produces an AI draft of the minutes body, or an inline
	// placeholder string when the generative call fails.
	Draft(ctx context.Context, req *DraftRequest) (*DraftResponse, error)
}

// DraftComposer is the single generative call the service depends on.
type DraftComposer interface {
	Draft(ctx context.Context, topic, keywords string) string
}
