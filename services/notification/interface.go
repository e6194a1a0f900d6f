package notification

import (
	"context"

	"vedicjivan/models"
)

// NotificationService sends customer-facing emails. Sends are
// fire-and-forget at call sites: failures are logged, never fatal.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, booking models.Booking) error
	SendBookingCancellation(ctx context.Context, booking models.Booking) error
	SendBookingReminder(ctx context.Context, booking models.Booking) error
}
