package booking

import (
	"context"
	"fmt"

	bookingRepo "vedicjivan/database/repository/booking"
	"vedicjivan/models"
	"vedicjivan/services/notification"
	"vedicjivan/services/scheduling"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService implements BookingService against the booking
// repository and the scheduling engine.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Scheduler *scheduling.DefaultSchedulingEngine
	Lock      *redis.Client
	Notifier  notification.NotificationService
	Reminders ReminderScheduler
	Logger    *zap.Logger
}

// CreateBooking validates and prices the request, then persists a pending
// booking. The slot lock closes the window where two concurrent requests
// for the same slot both pass validation.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	price, err := PriceFor(input.ServiceSlug, input.DurationMinutes)
	if err != nil {
		return nil, err
	}

	release, err := s.acquireSlotLock(ctx, input.Date, input.TimeSlot)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := s.Scheduler.ValidateBooking(ctx, input.Date, input.TimeSlot, input.DurationMinutes); err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ID:              uuid.NewString(),
		UserID:          input.UserID,
		UserName:        input.UserName,
		UserEmail:       input.UserEmail,
		UserPhone:       input.UserPhone,
		ServiceSlug:     input.ServiceSlug,
		ServiceTitle:    input.ServiceTitle,
		Date:            input.Date,
		TimeSlot:        input.TimeSlot,
		DurationMinutes: input.DurationMinutes,
		PriceINR:        price,
		Status:          models.BookingPending,
		Notes:           input.Notes,
		BirthDetails:    input.BirthDetails,
	}

	if err := s.Repo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.Logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("date", booking.Date),
		zap.String("timeSlot", booking.TimeSlot),
		zap.String("service", booking.ServiceSlug))
	return booking, nil
}

// GetBooking fetches a booking, restricting access to its owner or an admin.
func (s *DefaultBookingService) GetBooking(ctx context.Context, id string, requester *models.User) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrNotFound
	}
	if !requester.IsAdmin() && booking.UserEmail != requester.Email {
		return nil, ErrForbidden
	}
	return booking, nil
}

// ListBookings returns bookings visible to the requester, newest first.
// Admins see everything; users see only their own email's bookings.
func (s *DefaultBookingService) ListBookings(ctx context.Context, requester *models.User, input ListInput) ([]models.Booking, error) {
	filter := bookingRepo.ListFilter{Status: input.Status, Date: input.Date}
	if !requester.IsAdmin() {
		filter.UserEmail = requester.Email
	}
	return s.Repo.List(ctx, filter)
}

// CancelBooking transitions a booking to cancelled. Terminal bookings are
// rejected; cancelling frees the interval implicitly.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, id string, requester *models.User) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrNotFound
	}
	if !requester.IsAdmin() && booking.UserEmail != requester.Email {
		return nil, ErrForbidden
	}
	if booking.IsTerminal() {
		return nil, NewLifecycleError(fmt.Sprintf("cannot cancel a %s booking", booking.Status))
	}

	if err := s.Repo.UpdateStatus(ctx, id, models.BookingCancelled); err != nil {
		return nil, err
	}
	booking.Status = models.BookingCancelled

	go func(b models.Booking) {
		if err := s.Notifier.SendBookingCancellation(context.Background(), b); err != nil {
			s.Logger.Warn("failed to send cancellation email",
				zap.String("bookingID", b.ID), zap.Error(err))
		}
	}(*booking)

	s.Logger.Info("booking cancelled", zap.String("bookingID", id))
	return booking, nil
}

// Confirm transitions a booking to confirmed after payment capture,
// records the payment reference, and triggers the confirmation email and
// the pre-appointment reminder.
func (s *DefaultBookingService) Confirm(ctx context.Context, id, paymentID string) error {
	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if booking == nil {
		return ErrNotFound
	}

	if err := s.Repo.UpdateStatus(ctx, id, models.BookingConfirmed); err != nil {
		return err
	}
	if paymentID != "" {
		if err := s.Repo.SetPaymentID(ctx, id, paymentID); err != nil {
			s.Logger.Warn("failed to record payment reference",
				zap.String("bookingID", id), zap.Error(err))
		}
	}
	booking.Status = models.BookingConfirmed
	booking.PaymentID = paymentID

	go func(b models.Booking) {
		if err := s.Notifier.SendBookingConfirmation(context.Background(), b); err != nil {
			s.Logger.Warn("failed to send confirmation email",
				zap.String("bookingID", b.ID), zap.Error(err))
		}
	}(*booking)

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleBookingReminder(*booking); err != nil {
			s.Logger.Warn("failed to schedule reminder",
				zap.String("bookingID", id), zap.Error(err))
		}
	}

	s.Logger.Info("booking confirmed", zap.String("bookingID", id))
	return nil
}

// OverrideStatus sets any status without a transition-graph check. This is
// the admin escape hatch for marking completions and fixing mistakes.
func (s *DefaultBookingService) OverrideStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	if !models.ValidBookingStatus(status) {
		return nil, fmt.Errorf("invalid booking status %q", status)
	}

	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrNotFound
	}

	if err := s.Repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	booking.Status = status

	s.Logger.Info("booking status overridden",
		zap.String("bookingID", id), zap.String("status", status))
	return booking, nil
}
