package settingsRepo

import (
	"context"

	"vedicjivan/models"
)

// SettingsRepository defines persistence operations for the singleton
// settings documents.
type SettingsRepository interface {
	// GetBusinessHours returns the stored schedule, or nil when none exists.
	GetBusinessHours(ctx context.Context) (*models.BusinessHours, error)

	// ReplaceBusinessHours upserts the schedule wholesale.
	ReplaceBusinessHours(ctx context.Context, hours models.BusinessHours) error
}
