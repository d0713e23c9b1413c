package repository

import (
	"context"

	"minutes-backend/internal/domains/settings"
	"minutes-backend/internal/infrastructure/sheets"
	"minutes-backend/pkg/logger"
)

const colKey = 1 // 1-based sheet columns

// sheetRepository stores key/value settings in the settings tab.
type sheetRepository struct {
	gateway sheets.Gateway
}

// NewSheetRepository creates the sheet-backed settings repository.
func NewSheetRepository(gateway sheets.Gateway) settings.Repository {
	return &sheetRepository{gateway: gateway}
}

// Get reads one setting. A missing key or unreadable tab falls back to
// the seeded default so login survives a damaged sheet. A key that is
// missing from an otherwise healthy tab is written back with its
// default value.
func (r *sheetRepository) Get(ctx context.Context, key string) (string, error) {
	rows, err := r.gateway.ReadAll(ctx, sheets.TabSettings)
	if err != nil {
		logger.Warn("settings load failed, using default value", err)
		return settings.DefaultPasswords[key], nil
	}

	if corruptHeader(rows) {
		logger.Warn("settings tab header is corrupt, rebuilding", nil)
		if err := r.rebuild(ctx); err != nil {
			logger.Warn("settings tab rebuild failed, using default value", err)
		}
		return settings.DefaultPasswords[key], nil
	}

	for _, row := range rows[1:] {
		if len(row) >= 2 && row[0] == key {
			return row[1], nil
		}
	}

	// Seed the missing key so the next edit has a row to target.
	fallback := settings.DefaultPasswords[key]
	if err := r.gateway.AppendRow(ctx, sheets.TabSettings, []interface{}{key, fallback}); err != nil {
		logger.Warn("settings seed failed", err)
	}
	return fallback, nil
}

func (r *sheetRepository) Set(ctx context.Context, key, value string) error {
	rowNum, err := r.gateway.FindRowByKey(ctx, sheets.TabSettings, key, colKey)
	if err != nil {
		if err == sheets.ErrRowNotFound {
			if err := r.gateway.AppendRow(ctx, sheets.TabSettings, []interface{}{key, value}); err != nil {
				logger.Warn("settings append failed", err)
				return settings.ErrStoreUnavailable
			}
			return nil
		}
		logger.Warn("settings lookup failed", err)
		return settings.ErrStoreUnavailable
	}

	if err := r.gateway.UpdateRow(ctx, sheets.TabSettings, rowNum, []interface{}{key, value}); err != nil {
		logger.Warn("settings update failed", err)
		return settings.ErrStoreUnavailable
	}
	return nil
}

// rebuild resets the settings tab to its header and seeds the default
// passwords.
func (r *sheetRepository) rebuild(ctx context.Context) error {
	if err := r.gateway.ResetTab(ctx, sheets.TabSettings); err != nil {
		return err
	}
	for _, key := range []string{settings.KeyAdminPassword, settings.KeyUserPassword} {
		if err := r.gateway.AppendRow(ctx, sheets.TabSettings, []interface{}{key, settings.DefaultPasswords[key]}); err != nil {
			return err
		}
	}
	return nil
}

func corruptHeader(rows [][]string) bool {
	if len(rows) == 0 {
		return true
	}
	header := rows[0]
	return len(header) < 2 || header[0] != "Key" || header[1] != "Value"
}
