package service

import (
	"context"

	"minutes-backend/internal/domains/settings"
	"minutes-backend/pkg/jwt"
)

// settingsService implements settings.Service
type settingsService struct {
	repo       settings.Repository
	jwtManager *jwt.Manager
}

// NewSettingsService creates a new settings service instance
func NewSettingsService(repo settings.Repository, jwtManager *jwt.Manager) settings.Service {
	return &settingsService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

// Login checks the submitted password against both stored passwords.
// The admin password is checked first, so if both passwords are set to
// the same value the session gets the wider role.
func (s *settingsService) Login(ctx context.Context, req *settings.LoginRequest) (*settings.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	adminPW, err := s.repo.Get(ctx, settings.KeyAdminPassword)
	if err != nil {
		return nil, err
	}
	userPW, err := s.repo.Get(ctx, settings.KeyUserPassword)
	if err != nil {
		return nil, err
	}

	var role settings.Role
	switch req.Password {
	case adminPW:
		role = settings.RoleAdmin
	case userPW:
		role = settings.RoleUser
	default:
		return nil, settings.ErrInvalidPassword
	}

	token, err := s.jwtManager.GenerateToken(string(role))
	if err != nil {
		return nil, err
	}

	return &settings.LoginResponse{Role: role, Token: token}, nil
}

func (s *settingsService) UpdatePassword(ctx context.Context, req *settings.UpdatePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	key := settings.KeyUserPassword
	if req.Role == settings.RoleAdmin {
		key = settings.KeyAdminPassword
	}
	return s.repo.Set(ctx, key, req.Password)
}
