package availability

import (
	"context"

	"vedicjivan/models"
)

// AddBlockInput carries an admin request to block a period. A holiday has
// no times; a partial block needs both.
type AddBlockInput struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsHoliday bool   `json:"is_holiday"`
	Reason    string `json:"reason"`
}

// AvailabilityService is the slots and schedule surface consumed by handlers.
type AvailabilityService interface {
	AvailableSlots(ctx context.Context, date string) ([]models.AvailableSlot, error)

	BlocksForDate(ctx context.Context, date string) ([]models.UnavailabilityBlock, error)
	BlocksInRange(ctx context.Context, startDate, endDate string) ([]models.UnavailabilityBlock, error)
	HolidaysInRange(ctx context.Context, startDate, endDate string) ([]string, error)
	AddBlock(ctx context.Context, input AddBlockInput) (*models.UnavailabilityBlock, error)
	RemoveBlock(ctx context.Context, id string) error

	BusinessHours(ctx context.Context) (models.BusinessHours, error)
	UpdateBusinessHours(ctx context.Context, hours models.BusinessHours) error
}

var _ AvailabilityService = (*DefaultAvailabilityService)(nil)
