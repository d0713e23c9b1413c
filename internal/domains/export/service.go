package export

import "context"

// Service defines the contract for rendering meeting exports. Each
// method returns the finished document bytes.
type Service interface {
	CSV(ctx context.Context, req *Request) ([]byte, error)
	PDF(ctx context.Context, req *Request) ([]byte, error)
	XLSX(ctx context.Context, req *Request) ([]byte, error)
}
