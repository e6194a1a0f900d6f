package scheduling

import (
	"context"
	"fmt"
	"time"

	"vedicjivan/models"
)

// ValidateBooking checks a proposed booking interval against the schedule,
// short-circuiting on the first violation. A nil return means the interval
// is bookable; otherwise the error is a ConflictError with one of the
// conflict codes.
func (se *DefaultSchedulingEngine) ValidateBooking(ctx context.Context, date, startTime string, durationMinutes int) error {
	holiday, err := se.Blocks.HasHoliday(ctx, date)
	if err != nil {
		return err
	}
	if holiday {
		return NewConflictError(CodeHolidayConflict, "this date is a holiday")
	}

	hours, err := se.BusinessHours(ctx)
	if err != nil {
		return err
	}

	requested, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}

	dayConfig := DayConfigFor(hours, requested)
	if dayConfig == nil || !dayConfig.IsOpen {
		return NewConflictError(CodeDayClosed, "bookings are closed on this day")
	}

	start := TimeToMinutes(startTime)
	end := start + durationMinutes

	if start < TimeToMinutes(dayConfig.OpenTime) || end > TimeToMinutes(dayConfig.CloseTime) {
		return NewConflictError(CodeOutsideBusinessHours,
			fmt.Sprintf("booking must lie within business hours %s-%s", dayConfig.OpenTime, dayConfig.CloseTime))
	}

	blackouts, err := se.Blocks.BlackoutsForDate(ctx, date)
	if err != nil {
		return err
	}
	for _, b := range blackouts {
		if b.StartTime == "" || b.EndTime == "" {
			continue
		}
		if Overlaps(start, end, TimeToMinutes(b.StartTime), TimeToMinutes(b.EndTime)) {
			return NewConflictError(CodeUnavailableBlock, "this time is blocked off")
		}
	}

	cutoff := se.Clock.Now().UTC().Add(-time.Duration(models.PendingExpiryMinutes) * time.Minute)
	active, err := se.Bookings.ActiveForDate(ctx, date, cutoff)
	if err != nil {
		return err
	}
	for _, b := range active {
		bStart := TimeToMinutes(b.TimeSlot)
		if Overlaps(start, end, bStart, bStart+b.DurationMinutes) {
			return NewConflictError(CodeSlotTaken, "this time slot is already booked")
		}
	}
	return nil
}
