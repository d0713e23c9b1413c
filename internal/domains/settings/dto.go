package settings

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// LoginRequest carries a login attempt. The password alone decides the
// role; there are no individual accounts.
type LoginRequest struct {
	Password string `json:"password"`
}

// Validate validates the login request
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Password, validation.Required),
	)
}

// LoginResponse returns the granted role and a bearer token for it.
type LoginResponse struct {
	Role  Role   `json:"role"`
	Token string `json:"token"`
}

// UpdatePasswordRequest changes one of the two login passwords.
type UpdatePasswordRequest struct {
	Role     Role   `json:"role"`
	Password string `json:"password"`
}

// Validate validates the password update request
func (r UpdatePasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Role, validation.Required, validation.In(RoleAdmin, RoleUser)),
		validation.Field(&r.Password, validation.Required, validation.Length(1, 100)),
	)
}
