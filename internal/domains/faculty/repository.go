package faculty

import "context"

// Repository is the roster data access contract over the faculty tab.
type Repository interface {
	// List returns the roster in sheet order. Store failures and
	// missing columns degrade to an empty slice, never an error.
	List(ctx context.Context) ([]Member, error)

	// Append writes a new roster row.
	Append(ctx context.Context, member Member) error

	// Update overwrites department, rank and name for the row whose
	// sequence number matches. Returns ErrMemberNotFound when absent.
	Update(ctx context.Context, member Member) error

	// Delete removes the row whose sequence number matches.
	Delete(ctx context.Context, seqNo int) error
}
