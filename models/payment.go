package models

import "time"

// Payment status values.
const (
	PaymentCreated  = "created"
	PaymentCaptured = "captured"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

// Payment represents one payment attempt against a booking.
type Payment struct {
	ID                string    `bson:"id" json:"id"`
	BookingID         string    `bson:"booking_id" json:"booking_id"`
	RazorpayOrderID   string    `bson:"razorpay_order_id" json:"razorpay_order_id"`
	RazorpayPaymentID string    `bson:"razorpay_payment_id,omitempty" json:"razorpay_payment_id,omitempty"`
	RazorpaySignature string    `bson:"razorpay_signature,omitempty" json:"-"`
	AmountINR         int       `bson:"amount_inr" json:"amount_inr"`
	Currency          string    `bson:"currency" json:"currency"`
	Status            string    `bson:"status" json:"status"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
}
