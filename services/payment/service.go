package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"vedicjivan/config"
	bookingRepo "vedicjivan/database/repository/booking"
	paymentRepo "vedicjivan/database/repository/payment"
	"vedicjivan/models"
	bookingSvc "vedicjivan/services/booking"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultPaymentService implements PaymentService against the payment and
// booking repositories and the gateway.
type DefaultPaymentService struct {
	Payments paymentRepo.PaymentRepository
	Bookings bookingRepo.BookingRepository
	Booking  bookingSvc.BookingService
	Gateway  Gateway
	Logger   *zap.Logger
}

// CreateOrder opens a gateway order for a booking and records the payment
// attempt as created.
func (s *DefaultPaymentService) CreateOrder(ctx context.Context, bookingID string, amountINR int) (*OrderResult, error) {
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.Status == models.BookingConfirmed {
		return nil, ErrAlreadyPaid
	}

	// Razorpay expects paise.
	orderID, err := s.Gateway.CreateOrder(amountINR*100, "INR", fmt.Sprintf("booking_%s", bookingID),
		map[string]interface{}{
			"booking_id": bookingID,
			"service":    booking.ServiceTitle,
		})
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		ID:              uuid.NewString(),
		BookingID:       bookingID,
		RazorpayOrderID: orderID,
		AmountINR:       amountINR,
		Currency:        "INR",
		Status:          models.PaymentCreated,
	}
	if err := s.Payments.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.Logger.Info("payment order created",
		zap.String("bookingID", bookingID), zap.String("orderID", orderID))

	return &OrderResult{
		OrderID:  orderID,
		Amount:   amountINR * 100,
		Currency: "INR",
		KeyID:    config.AppConfig.RazorpayKeyID,
	}, nil
}

// VerifyPayment checks the client-supplied signature against the key
// secret. On match the payment is captured and the booking confirmed; on
// mismatch the booking stays pending.
func (s *DefaultPaymentService) VerifyPayment(ctx context.Context, input VerifyInput) error {
	if !VerifySignature(input.OrderID, input.PaymentID, input.Signature, config.AppConfig.RazorpayKeySecret) {
		return ErrInvalidSignature
	}

	if err := s.Payments.MarkCaptured(ctx, input.OrderID, input.PaymentID, input.Signature); err != nil {
		return err
	}
	if err := s.Booking.Confirm(ctx, input.BookingID, input.PaymentID); err != nil {
		return err
	}

	s.Logger.Info("payment verified",
		zap.String("bookingID", input.BookingID), zap.String("orderID", input.OrderID))
	return nil
}

// ListPayments returns the most recent payments (admin view).
func (s *DefaultPaymentService) ListPayments(ctx context.Context, limit int64) ([]models.Payment, error) {
	return s.Payments.List(ctx, limit)
}

// VerifySignature checks an HMAC-SHA256 hex signature over the exact
// concatenation "{order_id}|{payment_id}" with the shared secret.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s|%s", orderID, paymentID)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
