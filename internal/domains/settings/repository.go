package settings

import "context"

// Repository defines the contract for the settings tab. Get falls back
// to the seeded default when the key is missing or the tab is
// unreadable, so login keeps working even against a damaged sheet.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
