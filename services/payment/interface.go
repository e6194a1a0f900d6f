package payment

import (
	"context"
	"errors"

	"vedicjivan/models"
)

// CodeInvalidSignature is the reason code for a failed gateway signature check.
const CodeInvalidSignature = "INVALID_SIGNATURE"

// Sentinel errors surfaced to the request boundary.
var (
	ErrInvalidSignature = errors.New("invalid payment signature")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrAlreadyPaid      = errors.New("booking already paid")
)

// OrderResult is what a client needs to open the gateway checkout.
type OrderResult struct {
	OrderID  string `json:"order_id"`
	Amount   int    `json:"amount"` // paise
	Currency string `json:"currency"`
	KeyID    string `json:"key_id"`
}

// VerifyInput carries the gateway callback fields from the client.
type VerifyInput struct {
	OrderID   string `json:"razorpay_order_id" binding:"required"`
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
	BookingID string `json:"booking_id" binding:"required"`
}

// PaymentService is the gateway-facing surface consumed by handlers.
type PaymentService interface {
	CreateOrder(ctx context.Context, bookingID string, amountINR int) (*OrderResult, error)
	VerifyPayment(ctx context.Context, input VerifyInput) error
	HandleWebhook(ctx context.Context, body []byte, signature string) error
	ListPayments(ctx context.Context, limit int64) ([]models.Payment, error)
}

var _ PaymentService = (*DefaultPaymentService)(nil)

// Gateway creates orders at the payment provider. Narrowed from the SDK so
// tests can stub it.
type Gateway interface {
	CreateOrder(amountPaise int, currency, receipt string, notes map[string]interface{}) (string, error)
}
