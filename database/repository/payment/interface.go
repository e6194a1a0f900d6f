package paymentRepo

import (
	"context"
	"time"

	"vedicjivan/models"
)

// DailyRevenue is one bucket of the revenue-per-day aggregation.
type DailyRevenue struct {
	Date    string `bson:"_id"`
	Revenue int64  `bson:"revenue"`
}

// PaymentRepository defines persistence operations for payments.
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByOrderID(ctx context.Context, orderID string) (*models.Payment, error)

	// MarkCaptured records the gateway payment id (and signature, when the
	// capture came through the synchronous verify path) and flips the
	// payment to captured.
	MarkCaptured(ctx context.Context, orderID, paymentID, signature string) error
	MarkRefundedByPaymentID(ctx context.Context, paymentID string) error

	List(ctx context.Context, limit int64) ([]models.Payment, error)
	CountCaptured(ctx context.Context) (int64, error)
	TotalCapturedRevenue(ctx context.Context) (int64, error)
	DailyCapturedRevenue(ctx context.Context, since time.Time) ([]DailyRevenue, error)
}
