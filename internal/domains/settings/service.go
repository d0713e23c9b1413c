package settings

import "context"

// Service defines the contract for login and password management.
type Service interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	UpdatePassword(ctx context.Context, req *UpdatePasswordRequest) error
}
