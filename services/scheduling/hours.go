package scheduling

import (
	"context"
	"fmt"
	"time"

	"vedicjivan/models"
)

// HoursSource loads the persisted business-hours schedule. Satisfied by
// the settings repository.
type HoursSource interface {
	GetBusinessHours(ctx context.Context) (*models.BusinessHours, error)
}

// BusinessHours returns the persisted schedule, falling back to the
// defaults when no settings document exists.
func (se *DefaultSchedulingEngine) BusinessHours(ctx context.Context) (models.BusinessHours, error) {
	stored, err := se.Settings.GetBusinessHours(ctx)
	if err != nil {
		return models.BusinessHours{}, fmt.Errorf("failed to load business hours: %w", err)
	}
	if stored == nil {
		return models.DefaultBusinessHours(), nil
	}
	return *stored, nil
}

// DayConfigFor returns the schedule entry for the date's weekday
// (0=Monday .. 6=Sunday), or nil when the day has no entry.
func DayConfigFor(hours models.BusinessHours, date time.Time) *models.DayHours {
	day := (int(date.Weekday()) + 6) % 7
	for i := range hours.WeeklyHours {
		if hours.WeeklyHours[i].Day == day {
			return &hours.WeeklyHours[i]
		}
	}
	return nil
}

// ValidateBusinessHours rejects schedules that do not cover each weekday
// exactly once, have an open day whose close time is not strictly after
// its open time, or name an unknown timezone.
func ValidateBusinessHours(hours models.BusinessHours) error {
	if len(hours.WeeklyHours) != 7 {
		return fmt.Errorf("weekly hours must have exactly 7 entries, got %d", len(hours.WeeklyHours))
	}

	seen := make(map[int]bool, 7)
	for _, dh := range hours.WeeklyHours {
		if dh.Day < 0 || dh.Day > 6 {
			return fmt.Errorf("invalid day %d: must be 0 (Monday) through 6 (Sunday)", dh.Day)
		}
		if seen[dh.Day] {
			return fmt.Errorf("duplicate entry for day %d", dh.Day)
		}
		seen[dh.Day] = true

		if dh.IsOpen && TimeToMinutes(dh.CloseTime) <= TimeToMinutes(dh.OpenTime) {
			return fmt.Errorf("day %d: close time %s must be after open time %s", dh.Day, dh.CloseTime, dh.OpenTime)
		}
	}

	if _, err := time.LoadLocation(hours.Timezone); err != nil {
		return fmt.Errorf("unknown timezone %q", hours.Timezone)
	}
	return nil
}
