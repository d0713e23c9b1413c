package minutes

import "context"

// Repository is the minutes data access contract over the minutes tab.
type Repository interface {
	// List returns every record in sheet order. Store failures and a
	// corrupted header (missing ID column) degrade to an empty slice.
	List(ctx context.Context) ([]Minutes, error)

	// GetByID returns the record with the given identifier, or nil
	// when absent.
	GetByID(ctx context.Context, id string) (*Minutes, error)

	// Append writes a new record row.
	Append(ctx context.Context, record Minutes) error

	// UpdateByID overwrites the row whose ID matches. Returns
	// ErrMinutesNotFound when absent.
	UpdateByID(ctx context.Context, id string, record Minutes) error

	// UpdateByDate overwrites the first row whose date matches. Used
	// only by the duplicate-date overwrite resolution.
	UpdateByDate(ctx context.Context, date string, record Minutes) error

	// DeleteByID removes the row whose ID matches.
	DeleteByID(ctx context.Context, id string) error
}
