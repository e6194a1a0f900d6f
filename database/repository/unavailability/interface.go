package unavailRepo

import (
	"context"

	"vedicjivan/models"
)

// UnavailabilityRepository defines persistence operations for holiday and
// blackout blocks.
type UnavailabilityRepository interface {
	Create(ctx context.Context, block *models.UnavailabilityBlock) error
	Delete(ctx context.Context, id string) error

	// HasHoliday reports whether a full-day holiday record exists for date.
	HasHoliday(ctx context.Context, date string) (bool, error)

	// BlackoutsForDate returns the non-holiday blocks for date.
	BlackoutsForDate(ctx context.Context, date string) ([]models.UnavailabilityBlock, error)

	ListForDate(ctx context.Context, date string) ([]models.UnavailabilityBlock, error)
	ListRange(ctx context.Context, startDate, endDate string) ([]models.UnavailabilityBlock, error)
	HolidaysInRange(ctx context.Context, startDate, endDate string) ([]string, error)
}
