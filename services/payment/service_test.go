package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"vedicjivan/config"
	bookingRepo "vedicjivan/database/repository/booking"
	paymentRepo "vedicjivan/database/repository/payment"
	"vedicjivan/models"
	bookingSvc "vedicjivan/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func signOrder(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s|%s", orderID, paymentID)
	return hex.EncodeToString(mac.Sum(nil))
}

type stubPaymentRepo struct {
	payments map[string]*models.Payment
	created  []*models.Payment
	captured []string // "orderID/paymentID"
	refunded []string
}

func newStubPaymentRepo() *stubPaymentRepo {
	return &stubPaymentRepo{payments: map[string]*models.Payment{}}
}

func (r *stubPaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	r.created = append(r.created, payment)
	r.payments[payment.RazorpayOrderID] = payment
	return nil
}

func (r *stubPaymentRepo) GetByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	return r.payments[orderID], nil
}

func (r *stubPaymentRepo) MarkCaptured(ctx context.Context, orderID, paymentID, signature string) error {
	r.captured = append(r.captured, orderID+"/"+paymentID)
	return nil
}

func (r *stubPaymentRepo) MarkRefundedByPaymentID(ctx context.Context, paymentID string) error {
	r.refunded = append(r.refunded, paymentID)
	return nil
}

func (r *stubPaymentRepo) List(ctx context.Context, limit int64) ([]models.Payment, error) {
	return nil, nil
}

func (r *stubPaymentRepo) CountCaptured(ctx context.Context) (int64, error) { return 0, nil }

func (r *stubPaymentRepo) TotalCapturedRevenue(ctx context.Context) (int64, error) { return 0, nil }

func (r *stubPaymentRepo) DailyCapturedRevenue(ctx context.Context, since time.Time) ([]paymentRepo.DailyRevenue, error) {
	return nil, nil
}

// stubBookingLookup implements the booking repository reads the payment
// service performs.
type stubBookingLookup struct {
	booking *models.Booking
}

func (r *stubBookingLookup) Create(ctx context.Context, b *models.Booking) error { return nil }

func (r *stubBookingLookup) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	if r.booking != nil && r.booking.ID == id {
		return r.booking, nil
	}
	return nil, nil
}

func (r *stubBookingLookup) UpdateStatus(ctx context.Context, id, status string) error { return nil }

func (r *stubBookingLookup) SetPaymentID(ctx context.Context, id, paymentID string) error { return nil }

func (r *stubBookingLookup) List(ctx context.Context, filter bookingRepo.ListFilter) ([]models.Booking, error) {
	return nil, nil
}

func (r *stubBookingLookup) ActiveForDate(ctx context.Context, date string, pendingCutoff time.Time) ([]models.Booking, error) {
	return nil, nil
}

func (r *stubBookingLookup) CountForDate(ctx context.Context, date string) (int64, error) {
	return 0, nil
}

func (r *stubBookingLookup) CountUpcomingConfirmed(ctx context.Context, fromDate string) (int64, error) {
	return 0, nil
}

func (r *stubBookingLookup) Count(ctx context.Context) (int64, error) { return 0, nil }

func (r *stubBookingLookup) CountsByStatus(ctx context.Context) ([]bookingRepo.StatusCount, error) {
	return nil, nil
}

func (r *stubBookingLookup) Recent(ctx context.Context, limit int64) ([]models.Booking, error) {
	return nil, nil
}

func (r *stubBookingLookup) RevenueByService(ctx context.Context, statuses []string) ([]bookingRepo.ServiceRevenue, error) {
	return nil, nil
}

func (r *stubBookingLookup) DailyCounts(ctx context.Context, startDate, endDate string) ([]bookingRepo.DateCount, error) {
	return nil, nil
}

type stubConfirmer struct {
	confirmed []string // "bookingID/paymentID"
}

func (s *stubConfirmer) CreateBooking(ctx context.Context, input bookingSvc.CreateBookingInput) (*models.Booking, error) {
	return nil, nil
}

func (s *stubConfirmer) GetBooking(ctx context.Context, id string, requester *models.User) (*models.Booking, error) {
	return nil, nil
}

func (s *stubConfirmer) ListBookings(ctx context.Context, requester *models.User, input bookingSvc.ListInput) ([]models.Booking, error) {
	return nil, nil
}

func (s *stubConfirmer) CancelBooking(ctx context.Context, id string, requester *models.User) (*models.Booking, error) {
	return nil, nil
}

func (s *stubConfirmer) Confirm(ctx context.Context, id, paymentID string) error {
	s.confirmed = append(s.confirmed, id+"/"+paymentID)
	return nil
}

func (s *stubConfirmer) OverrideStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	return nil, nil
}

type stubGateway struct {
	orderID    string
	lastAmount int
}

func (g *stubGateway) CreateOrder(amountPaise int, currency, receipt string, notes map[string]interface{}) (string, error) {
	g.lastAmount = amountPaise
	return g.orderID, nil
}

func newTestPaymentService(payments *stubPaymentRepo, lookup *stubBookingLookup, confirmer *stubConfirmer, gateway *stubGateway) *DefaultPaymentService {
	return &DefaultPaymentService{
		Payments: payments,
		Bookings: lookup,
		Booking:  confirmer,
		Gateway:  gateway,
		Logger:   zap.NewNop(),
	}
}

func TestVerifySignature(t *testing.T) {
	secret := "test_secret"
	sig := signOrder("order_1", "pay_1", secret)

	assert.True(t, VerifySignature("order_1", "pay_1", sig, secret))
	assert.False(t, VerifySignature("order_1", "pay_1", sig, "other_secret"))
	assert.False(t, VerifySignature("order_2", "pay_1", sig, secret))
	assert.False(t, VerifySignature("order_1", "pay_1", "deadbeef", secret))
	assert.False(t, VerifySignature("order_1", "pay_1", "", secret))
}

func TestVerifyPaymentConfirmsBooking(t *testing.T) {
	config.AppConfig.RazorpayKeySecret = "test_secret"
	payments := newStubPaymentRepo()
	confirmer := &stubConfirmer{}
	svc := newTestPaymentService(payments, &stubBookingLookup{}, confirmer, &stubGateway{})

	err := svc.VerifyPayment(context.Background(), VerifyInput{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: signOrder("order_1", "pay_1", "test_secret"),
		BookingID: "b1",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"order_1/pay_1"}, payments.captured)
	assert.Equal(t, []string{"b1/pay_1"}, confirmer.confirmed)
}

func TestVerifyPaymentRejectsBadSignature(t *testing.T) {
	config.AppConfig.RazorpayKeySecret = "test_secret"
	payments := newStubPaymentRepo()
	confirmer := &stubConfirmer{}
	svc := newTestPaymentService(payments, &stubBookingLookup{}, confirmer, &stubGateway{})

	err := svc.VerifyPayment(context.Background(), VerifyInput{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: signOrder("order_1", "pay_1", "wrong_secret"),
		BookingID: "b1",
	})
	assert.ErrorIs(t, err, ErrInvalidSignature)
	assert.Empty(t, payments.captured)
	assert.Empty(t, confirmer.confirmed)
}

func TestCreateOrderRecordsPayment(t *testing.T) {
	config.AppConfig.RazorpayKeyID = "rzp_test_key"
	payments := newStubPaymentRepo()
	lookup := &stubBookingLookup{booking: &models.Booking{
		ID:           "b1",
		ServiceTitle: "Call Consultation",
		Status:       models.BookingPending,
	}}
	gateway := &stubGateway{orderID: "order_1"}
	svc := newTestPaymentService(payments, lookup, &stubConfirmer{}, gateway)

	order, err := svc.CreateOrder(context.Background(), "b1", 1999)
	require.NoError(t, err)

	assert.Equal(t, "order_1", order.OrderID)
	assert.Equal(t, 199900, order.Amount)
	assert.Equal(t, 199900, gateway.lastAmount)
	assert.Equal(t, "INR", order.Currency)
	assert.Equal(t, "rzp_test_key", order.KeyID)

	require.Len(t, payments.created, 1)
	assert.Equal(t, models.PaymentCreated, payments.created[0].Status)
	assert.Equal(t, "b1", payments.created[0].BookingID)
}

func TestCreateOrderUnknownBooking(t *testing.T) {
	svc := newTestPaymentService(newStubPaymentRepo(), &stubBookingLookup{}, &stubConfirmer{}, &stubGateway{})

	_, err := svc.CreateOrder(context.Background(), "missing", 1999)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCreateOrderAlreadyPaid(t *testing.T) {
	lookup := &stubBookingLookup{booking: &models.Booking{ID: "b1", Status: models.BookingConfirmed}}
	svc := newTestPaymentService(newStubPaymentRepo(), lookup, &stubConfirmer{}, &stubGateway{})

	_, err := svc.CreateOrder(context.Background(), "b1", 1999)
	assert.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestHandleWebhookPaymentCaptured(t *testing.T) {
	config.AppConfig.RazorpayWebhookSecret = ""
	payments := newStubPaymentRepo()
	payments.payments["order_1"] = &models.Payment{ID: "p1", BookingID: "b1", RazorpayOrderID: "order_1"}
	svc := newTestPaymentService(payments, &stubBookingLookup{}, &stubConfirmer{}, &stubGateway{})

	body := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_1","order_id":"order_1"}}}}`)
	err := svc.HandleWebhook(context.Background(), body, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"order_1/pay_1"}, payments.captured)
}

func TestHandleWebhookIgnoresUnknownOrder(t *testing.T) {
	config.AppConfig.RazorpayWebhookSecret = ""
	payments := newStubPaymentRepo()
	svc := newTestPaymentService(payments, &stubBookingLookup{}, &stubConfirmer{}, &stubGateway{})

	body := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_1","order_id":"order_unknown"}}}}`)
	err := svc.HandleWebhook(context.Background(), body, "")
	require.NoError(t, err)
	assert.Empty(t, payments.captured)
}

func TestHandleWebhookRefundCreated(t *testing.T) {
	config.AppConfig.RazorpayWebhookSecret = ""
	payments := newStubPaymentRepo()
	svc := newTestPaymentService(payments, &stubBookingLookup{}, &stubConfirmer{}, &stubGateway{})

	body := []byte(`{"event":"refund.created","payload":{"refund":{"entity":{"id":"rfnd_1","payment_id":"pay_1"}}}}`)
	err := svc.HandleWebhook(context.Background(), body, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"pay_1"}, payments.refunded)
}

func TestHandleWebhookChecksBodySignature(t *testing.T) {
	config.AppConfig.RazorpayWebhookSecret = "hook_secret"
	defer func() { config.AppConfig.RazorpayWebhookSecret = "" }()

	payments := newStubPaymentRepo()
	payments.payments["order_1"] = &models.Payment{ID: "p1", BookingID: "b1", RazorpayOrderID: "order_1"}
	svc := newTestPaymentService(payments, &stubBookingLookup{}, &stubConfirmer{}, &stubGateway{})

	body := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_1","order_id":"order_1"}}}}`)

	mac := hmac.New(sha256.New, []byte("hook_secret"))
	mac.Write(body)
	good := hex.EncodeToString(mac.Sum(nil))

	require.NoError(t, svc.HandleWebhook(context.Background(), body, good))
	assert.ErrorIs(t, svc.HandleWebhook(context.Background(), body, "bogus"), ErrInvalidSignature)
}

func TestHandleWebhookIgnoresUnknownEvents(t *testing.T) {
	config.AppConfig.RazorpayWebhookSecret = ""
	payments := newStubPaymentRepo()
	svc := newTestPaymentService(payments, &stubBookingLookup{}, &stubConfirmer{}, &stubGateway{})

	err := svc.HandleWebhook(context.Background(), []byte(`{"event":"payment.authorized"}`), "")
	require.NoError(t, err)
	assert.Empty(t, payments.captured)
	assert.Empty(t, payments.refunded)
}
