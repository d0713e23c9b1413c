package faculty

import "context"

// Service is the roster business logic contract.
type Service interface {
	List(ctx context.Context) ([]Member, error)

	// Options returns the selector labels ("Name (Dept/Rank)") used by
	// the minutes attendee picker.
	Options(ctx context.Context) ([]string, error)

	Create(ctx context.Context, req *CreateRequest) (*Member, error)
	Update(ctx context.Context, seqNo int, req *UpdateRequest) (*Member, error)
	Delete(ctx context.Context, seqNo int) error
}
