package scheduling

import (
	"context"
	"fmt"
	"time"

	"vedicjivan/models"

	"go.uber.org/zap"
)

// SlotDurationMinutes is the fixed granularity of bookable slots.
const SlotDurationMinutes = 30

// BlockSource loads holiday and blackout records. Satisfied by the
// unavailability repository.
type BlockSource interface {
	HasHoliday(ctx context.Context, date string) (bool, error)
	BlackoutsForDate(ctx context.Context, date string) ([]models.UnavailabilityBlock, error)
}

// BookingSource loads the bookings that currently occupy their interval.
// Satisfied by the booking repository.
type BookingSource interface {
	ActiveForDate(ctx context.Context, date string, pendingCutoff time.Time) ([]models.Booking, error)
}

// DefaultSchedulingEngine computes availability and validates booking
// conflicts against business hours, blackouts and active bookings.
type DefaultSchedulingEngine struct {
	Settings HoursSource
	Blocks   BlockSource
	Bookings BookingSource
	Clock    Clock
	Logger   *zap.Logger
}

// interval is a half-open [Start, End) range in minutes since midnight.
type interval struct {
	Start int
	End   int
}

// AvailableSlots returns the free 30-minute slots for date ("YYYY-MM-DD"),
// in chronological order. Closed days and holidays yield an empty result.
func (se *DefaultSchedulingEngine) AvailableSlots(ctx context.Context, date string) ([]models.AvailableSlot, error) {
	hours, err := se.BusinessHours(ctx)
	if err != nil {
		return nil, err
	}

	requested, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	dayConfig := DayConfigFor(hours, requested)
	if dayConfig == nil || !dayConfig.IsOpen {
		return []models.AvailableSlot{}, nil
	}

	holiday, err := se.Blocks.HasHoliday(ctx, date)
	if err != nil {
		return nil, err
	}
	if holiday {
		return []models.AvailableSlot{}, nil
	}

	blocked, err := se.blockedIntervals(ctx, date)
	if err != nil {
		return nil, err
	}

	// When the requested date is today, slots whose start is not strictly
	// in the future are dropped. "Today" and "now" are evaluated in the
	// business timezone, not the server's.
	now := se.nowIn(hours.Timezone)
	isToday := requested.Format("2006-01-02") == now.Format("2006-01-02")
	nowMinutes := now.Hour()*60 + now.Minute()

	openMin := TimeToMinutes(dayConfig.OpenTime)
	closeMin := TimeToMinutes(dayConfig.CloseTime)

	available := []models.AvailableSlot{}
	for start := openMin; start+SlotDurationMinutes <= closeMin; start += SlotDurationMinutes {
		end := start + SlotDurationMinutes

		if isToday && start <= nowMinutes {
			continue
		}

		free := true
		for _, b := range blocked {
			if Overlaps(start, end, b.Start, b.End) {
				free = false
				break
			}
		}
		if free {
			available = append(available, models.AvailableSlot{
				Start: MinutesToTime(start),
				End:   MinutesToTime(end),
			})
		}
	}
	return available, nil
}

// blockedIntervals collects the blackout and active-booking intervals for date.
func (se *DefaultSchedulingEngine) blockedIntervals(ctx context.Context, date string) ([]interval, error) {
	blackouts, err := se.Blocks.BlackoutsForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	var blocked []interval
	for _, b := range blackouts {
		if b.StartTime == "" || b.EndTime == "" {
			continue
		}
		blocked = append(blocked, interval{Start: TimeToMinutes(b.StartTime), End: TimeToMinutes(b.EndTime)})
	}

	cutoff := se.Clock.Now().UTC().Add(-time.Duration(models.PendingExpiryMinutes) * time.Minute)
	active, err := se.Bookings.ActiveForDate(ctx, date, cutoff)
	if err != nil {
		return nil, err
	}
	for _, b := range active {
		start := TimeToMinutes(b.TimeSlot)
		blocked = append(blocked, interval{Start: start, End: start + b.DurationMinutes})
	}
	return blocked, nil
}

// nowIn returns the current time in the named zone, falling back to server
// local time when the zone cannot be loaded.
func (se *DefaultSchedulingEngine) nowIn(timezone string) time.Time {
	now := se.Clock.Now()
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		if se.Logger != nil {
			se.Logger.Warn("unknown business timezone, using server local time",
				zap.String("timezone", timezone), zap.Error(err))
		}
		return now
	}
	return now.In(loc)
}
