package booking

import (
	"context"

	"vedicjivan/models"
)

// CreateBookingInput carries the fields a client submits when booking.
type CreateBookingInput struct {
	UserID          string
	UserName        string
	UserEmail       string
	UserPhone       string
	ServiceSlug     string
	ServiceTitle    string
	Date            string // "YYYY-MM-DD"
	TimeSlot        string // "HH:MM"
	DurationMinutes int
	Notes           string
	BirthDetails    *models.BirthDetails
}

// ListInput narrows booking listings on behalf of a requester.
type ListInput struct {
	Status string
	Date   string
}

// ReminderScheduler schedules a reminder ahead of a confirmed appointment.
type ReminderScheduler interface {
	ScheduleBookingReminder(booking models.Booking) error
}

// BookingService is the lifecycle surface consumed by handlers and the
// payment service.
type BookingService interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error)
	GetBooking(ctx context.Context, id string, requester *models.User) (*models.Booking, error)
	ListBookings(ctx context.Context, requester *models.User, input ListInput) ([]models.Booking, error)
	CancelBooking(ctx context.Context, id string, requester *models.User) (*models.Booking, error)

	// Confirm transitions a booking to confirmed after payment capture and
	// triggers the confirmation email and reminder.
	Confirm(ctx context.Context, id, paymentID string) error

	// OverrideStatus sets any status without a transition-graph check. This
	// is the admin escape hatch for marking completions and fixing mistakes.
	OverrideStatus(ctx context.Context, id, status string) (*models.Booking, error)
}

var _ BookingService = (*DefaultBookingService)(nil)
