package admin

import (
	"context"
	"testing"
	"time"

	bookingRepo "vedicjivan/database/repository/booking"
	paymentRepo "vedicjivan/database/repository/payment"
	"vedicjivan/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUsers struct {
	count int64
}

func (s *stubUsers) Create(ctx context.Context, usr *models.User) error { return nil }

func (s *stubUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	return nil, nil
}

func (s *stubUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, nil
}

func (s *stubUsers) Count(ctx context.Context) (int64, error) { return s.count, nil }

type stubBookings struct {
	todayCount    int64
	upcoming      int64
	total         int64
	statusCounts  []bookingRepo.StatusCount
	recent        []models.Booking
	byService     []bookingRepo.ServiceRevenue
	dailyCounts   []bookingRepo.DateCount
	lastDailyFrom string
	lastDailyTo   string
}

func (s *stubBookings) Create(ctx context.Context, b *models.Booking) error { return nil }

func (s *stubBookings) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return nil, nil
}

func (s *stubBookings) UpdateStatus(ctx context.Context, id, status string) error { return nil }

func (s *stubBookings) SetPaymentID(ctx context.Context, id, paymentID string) error { return nil }

func (s *stubBookings) List(ctx context.Context, filter bookingRepo.ListFilter) ([]models.Booking, error) {
	return nil, nil
}

func (s *stubBookings) ActiveForDate(ctx context.Context, date string, pendingCutoff time.Time) ([]models.Booking, error) {
	return nil, nil
}

func (s *stubBookings) CountForDate(ctx context.Context, date string) (int64, error) {
	return s.todayCount, nil
}

func (s *stubBookings) CountUpcomingConfirmed(ctx context.Context, fromDate string) (int64, error) {
	return s.upcoming, nil
}

func (s *stubBookings) Count(ctx context.Context) (int64, error) { return s.total, nil }

func (s *stubBookings) CountsByStatus(ctx context.Context) ([]bookingRepo.StatusCount, error) {
	return s.statusCounts, nil
}

func (s *stubBookings) Recent(ctx context.Context, limit int64) ([]models.Booking, error) {
	return s.recent, nil
}

func (s *stubBookings) RevenueByService(ctx context.Context, statuses []string) ([]bookingRepo.ServiceRevenue, error) {
	return s.byService, nil
}

func (s *stubBookings) DailyCounts(ctx context.Context, startDate, endDate string) ([]bookingRepo.DateCount, error) {
	s.lastDailyFrom = startDate
	s.lastDailyTo = endDate
	return s.dailyCounts, nil
}

type stubPayments struct {
	captured     int64
	totalRevenue int64
	daily        []paymentRepo.DailyRevenue
}

func (s *stubPayments) Create(ctx context.Context, p *models.Payment) error { return nil }

func (s *stubPayments) GetByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	return nil, nil
}

func (s *stubPayments) MarkCaptured(ctx context.Context, orderID, paymentID, signature string) error {
	return nil
}

func (s *stubPayments) MarkRefundedByPaymentID(ctx context.Context, paymentID string) error {
	return nil
}

func (s *stubPayments) List(ctx context.Context, limit int64) ([]models.Payment, error) {
	return nil, nil
}

func (s *stubPayments) CountCaptured(ctx context.Context) (int64, error) { return s.captured, nil }

func (s *stubPayments) TotalCapturedRevenue(ctx context.Context) (int64, error) {
	return s.totalRevenue, nil
}

func (s *stubPayments) DailyCapturedRevenue(ctx context.Context, since time.Time) ([]paymentRepo.DailyRevenue, error) {
	return s.daily, nil
}

func TestDashboardAssemblesSummary(t *testing.T) {
	bookings := &stubBookings{
		todayCount: 3,
		upcoming:   7,
		statusCounts: []bookingRepo.StatusCount{
			{Status: models.BookingConfirmed, Count: 5},
			{Status: models.BookingPending, Count: 2},
		},
		recent: []models.Booking{
			{ID: "b1", UserName: "Asha", ServiceTitle: "Call Consultation", Date: "2026-03-10", TimeSlot: "14:00", Status: models.BookingConfirmed, PriceINR: 1999},
		},
	}
	svc := &DefaultAdminService{
		Users:    &stubUsers{},
		Bookings: bookings,
		Payments: &stubPayments{totalRevenue: 12345},
	}

	dash, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), dash.TodayBookings)
	assert.Equal(t, int64(7), dash.UpcomingBookings)
	assert.Equal(t, int64(12345), dash.TotalRevenue)
	assert.Equal(t, int64(5), dash.BookingsByStatus[models.BookingConfirmed])
	assert.Equal(t, int64(2), dash.BookingsByStatus[models.BookingPending])
	require.Len(t, dash.RecentBookings, 1)
	assert.Equal(t, "b1", dash.RecentBookings[0].ID)
	assert.Equal(t, 1999, dash.RecentBookings[0].PriceINR)
}

func TestStatsZeroFillsDailySeries(t *testing.T) {
	today := time.Now().UTC().Format("2006-01-02")
	bookings := &stubBookings{
		total:       42,
		byService:   []bookingRepo.ServiceRevenue{{Service: "call-consultation", Bookings: 4, Revenue: 7996}},
		dailyCounts: []bookingRepo.DateCount{{Date: today, Count: 2}},
	}
	payments := &stubPayments{
		captured:     9,
		totalRevenue: 50000,
		daily:        []paymentRepo.DailyRevenue{{Date: today, Revenue: 3998}},
	}
	svc := &DefaultAdminService{
		Users:    &stubUsers{count: 11},
		Bookings: bookings,
		Payments: payments,
	}

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(11), stats.TotalUsers)
	assert.Equal(t, int64(42), stats.TotalBookings)
	assert.Equal(t, int64(9), stats.TotalPayments)
	require.Len(t, stats.RevenueByService, 1)

	// Both series span the full window, oldest first, gaps zero-filled.
	require.Len(t, stats.DailyBookings, reportDays)
	require.Len(t, stats.DailyRevenue, reportDays)
	assert.Equal(t, bookings.lastDailyFrom, stats.DailyBookings[0].Date)
	assert.Equal(t, today, stats.DailyBookings[reportDays-1].Date)
	assert.Equal(t, int64(2), stats.DailyBookings[reportDays-1].Count)
	assert.Equal(t, int64(0), stats.DailyBookings[0].Count)
	assert.Equal(t, int64(3998), stats.DailyRevenue[reportDays-1].Revenue)
	assert.Equal(t, int64(0), stats.DailyRevenue[0].Revenue)
}
