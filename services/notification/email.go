package notification

import (
	"context"
	"fmt"

	"vedicjivan/config"
	"vedicjivan/models"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// DefaultNotificationService delivers emails through Resend. An empty API
// key degrades every send to a log line, matching local development.
type DefaultNotificationService struct {
	Logger *zap.Logger
}

// SendBookingConfirmation emails the customer their confirmed booking details.
func (s *DefaultNotificationService) SendBookingConfirmation(ctx context.Context, booking models.Booking) error {
	subject := fmt.Sprintf("Booking Confirmed - %s | VedicJivan", booking.ServiceTitle)
	html := fmt.Sprintf(`
		<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto;">
			<h2 style="color: #7c3aed;">Booking Confirmed!</h2>
			<p>Dear %s,</p>
			<p>Your booking has been confirmed. Here are the details:</p>
			<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
				<tr><td style="padding: 8px; font-weight: bold;">Service</td><td style="padding: 8px;">%s</td></tr>
				<tr><td style="padding: 8px; font-weight: bold;">Date</td><td style="padding: 8px;">%s</td></tr>
				<tr><td style="padding: 8px; font-weight: bold;">Time</td><td style="padding: 8px;">%s</td></tr>
				<tr><td style="padding: 8px; font-weight: bold;">Duration</td><td style="padding: 8px;">%d minutes</td></tr>
				<tr><td style="padding: 8px; font-weight: bold;">Amount Paid</td><td style="padding: 8px;">&#8377;%d</td></tr>
			</table>
			<p>We will contact you at the scheduled time. If you have any questions, please reach out via WhatsApp.</p>
			<p style="color: #666; font-size: 14px;">Thank you for choosing VedicJivan!</p>
		</div>`,
		booking.UserName, booking.ServiceTitle, booking.Date, booking.TimeSlot,
		booking.DurationMinutes, booking.PriceINR)

	return s.send(ctx, booking.UserEmail, subject, html)
}

// SendBookingCancellation emails the customer that their booking was cancelled.
func (s *DefaultNotificationService) SendBookingCancellation(ctx context.Context, booking models.Booking) error {
	subject := fmt.Sprintf("Booking Cancelled - %s | VedicJivan", booking.ServiceTitle)
	html := fmt.Sprintf(`
		<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto;">
			<h2 style="color: #7c3aed;">Booking Cancelled</h2>
			<p>Dear %s,</p>
			<p>Your booking for <strong>%s</strong> on <strong>%s</strong> at <strong>%s</strong> has been cancelled.</p>
			<p>If this was a mistake or you'd like to rebook, please visit our website.</p>
			<p style="color: #666; font-size: 14px;">VedicJivan Team</p>
		</div>`,
		booking.UserName, booking.ServiceTitle, booking.Date, booking.TimeSlot)

	return s.send(ctx, booking.UserEmail, subject, html)
}

// SendBookingReminder emails the customer shortly before their appointment.
func (s *DefaultNotificationService) SendBookingReminder(ctx context.Context, booking models.Booking) error {
	subject := fmt.Sprintf("Upcoming Consultation - %s | VedicJivan", booking.ServiceTitle)
	html := fmt.Sprintf(`
		<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto;">
			<h2 style="color: #7c3aed;">Your consultation is coming up</h2>
			<p>Dear %s,</p>
			<p>A reminder that your <strong>%s</strong> is scheduled for <strong>%s</strong> at <strong>%s</strong>.</p>
			<p style="color: #666; font-size: 14px;">VedicJivan Team</p>
		</div>`,
		booking.UserName, booking.ServiceTitle, booking.Date, booking.TimeSlot)

	return s.send(ctx, booking.UserEmail, subject, html)
}

func (s *DefaultNotificationService) send(ctx context.Context, to, subject, html string) error {
	if config.AppConfig.ResendAPIKey == "" {
		s.Logger.Info("email skipped, no RESEND_API_KEY",
			zap.String("to", to), zap.String("subject", subject))
		return nil
	}

	client := resend.NewClient(config.AppConfig.ResendAPIKey)
	params := &resend.SendEmailRequest{
		From:    config.AppConfig.EmailFrom,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}
	if _, err := client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
