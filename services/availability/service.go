package availability

import (
	"context"
	"errors"
	"fmt"

	settingsRepo "vedicjivan/database/repository/settings"
	unavailRepo "vedicjivan/database/repository/unavailability"
	"vedicjivan/models"
	"vedicjivan/services/scheduling"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ErrBlockNotFound is returned when removing a block that does not exist.
var ErrBlockNotFound = errors.New("unavailability block not found")

// DefaultAvailabilityService implements AvailabilityService over the
// scheduling engine and the unavailability and settings repositories.
type DefaultAvailabilityService struct {
	Engine   *scheduling.DefaultSchedulingEngine
	Blocks   unavailRepo.UnavailabilityRepository
	Settings settingsRepo.SettingsRepository
	Logger   *zap.Logger
}

// AvailableSlots returns the free 30-minute slots for date.
func (s *DefaultAvailabilityService) AvailableSlots(ctx context.Context, date string) ([]models.AvailableSlot, error) {
	return s.Engine.AvailableSlots(ctx, date)
}

// BlocksForDate returns every block for the date, holidays included.
func (s *DefaultAvailabilityService) BlocksForDate(ctx context.Context, date string) ([]models.UnavailabilityBlock, error) {
	return s.Blocks.ListForDate(ctx, date)
}

// BlocksInRange returns every block within the date range.
func (s *DefaultAvailabilityService) BlocksInRange(ctx context.Context, startDate, endDate string) ([]models.UnavailabilityBlock, error) {
	return s.Blocks.ListRange(ctx, startDate, endDate)
}

// HolidaysInRange returns holiday dates within the range, for calendar views.
func (s *DefaultAvailabilityService) HolidaysInRange(ctx context.Context, startDate, endDate string) ([]string, error) {
	return s.Blocks.HolidaysInRange(ctx, startDate, endDate)
}

// AddBlock records a holiday or a partial-day blackout. A date may carry
// at most one holiday record; partial blocks need start < end.
func (s *DefaultAvailabilityService) AddBlock(ctx context.Context, input AddBlockInput) (*models.UnavailabilityBlock, error) {
	block := &models.UnavailabilityBlock{
		ID:        uuid.NewString(),
		Date:      input.Date,
		IsHoliday: input.IsHoliday,
		Reason:    input.Reason,
	}

	if input.IsHoliday {
		exists, err := s.Blocks.HasHoliday(ctx, input.Date)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("%s is already marked as a holiday", input.Date)
		}
	} else {
		if input.StartTime == "" || input.EndTime == "" {
			return nil, fmt.Errorf("start_time and end_time are required for time blocks")
		}
		if scheduling.TimeToMinutes(input.StartTime) >= scheduling.TimeToMinutes(input.EndTime) {
			return nil, fmt.Errorf("start_time must be before end_time")
		}
		block.StartTime = input.StartTime
		block.EndTime = input.EndTime
	}

	if err := s.Blocks.Create(ctx, block); err != nil {
		return nil, err
	}

	s.Logger.Info("unavailability block added",
		zap.String("date", block.Date), zap.Bool("holiday", block.IsHoliday))
	return block, nil
}

// RemoveBlock deletes a block, making the period bookable again.
func (s *DefaultAvailabilityService) RemoveBlock(ctx context.Context, id string) error {
	if err := s.Blocks.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrBlockNotFound
		}
		return err
	}
	s.Logger.Info("unavailability block removed", zap.String("blockID", id))
	return nil
}

// BusinessHours returns the schedule, falling back to defaults.
func (s *DefaultAvailabilityService) BusinessHours(ctx context.Context) (models.BusinessHours, error) {
	return s.Engine.BusinessHours(ctx)
}

// UpdateBusinessHours validates and replaces the schedule wholesale.
func (s *DefaultAvailabilityService) UpdateBusinessHours(ctx context.Context, hours models.BusinessHours) error {
	if err := scheduling.ValidateBusinessHours(hours); err != nil {
		return err
	}
	if err := s.Settings.ReplaceBusinessHours(ctx, hours); err != nil {
		return err
	}
	s.Logger.Info("business hours updated", zap.String("timezone", hours.Timezone))
	return nil
}
