package admin

import (
	"context"
	"time"

	bookingRepo "vedicjivan/database/repository/booking"
	paymentRepo "vedicjivan/database/repository/payment"
	userRepo "vedicjivan/database/repository/user"
	"vedicjivan/models"
)

// reportDays is the window of the daily dashboard series.
const reportDays = 30

// RecentBooking is the dashboard's condensed booking row.
type RecentBooking struct {
	ID           string `json:"id"`
	UserName     string `json:"user_name"`
	ServiceTitle string `json:"service_title"`
	Date         string `json:"date"`
	TimeSlot     string `json:"time_slot"`
	Status       string `json:"status"`
	PriceINR     int    `json:"price_inr"`
}

// Dashboard is the admin landing-page summary.
type Dashboard struct {
	TodayBookings    int64            `json:"today_bookings"`
	UpcomingBookings int64            `json:"upcoming_bookings"`
	TotalRevenue     int64            `json:"total_revenue"`
	BookingsByStatus map[string]int64 `json:"bookings_by_status"`
	RecentBookings   []RecentBooking  `json:"recent_bookings"`
}

// DailyPoint is one day of a time series, zero-filled for missing days.
type DailyPoint struct {
	Date    string `json:"date"`
	Count   int64  `json:"bookings,omitempty"`
	Revenue int64  `json:"revenue,omitempty"`
}

// Stats is the aggregate reporting view.
type Stats struct {
	TotalUsers       int64                        `json:"total_users"`
	TotalBookings    int64                        `json:"total_bookings"`
	TotalPayments    int64                        `json:"total_payments"`
	RevenueByService []bookingRepo.ServiceRevenue `json:"revenue_by_service"`
	DailyBookings    []DailyPoint                 `json:"daily_bookings"`
	DailyRevenue     []DailyPoint                 `json:"daily_revenue"`
}

// AdminService produces the reporting views.
type AdminService interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
	Stats(ctx context.Context) (*Stats, error)
}

var _ AdminService = (*DefaultAdminService)(nil)

// DefaultAdminService implements AdminService over the repositories.
type DefaultAdminService struct {
	Users    userRepo.UserRepository
	Bookings bookingRepo.BookingRepository
	Payments paymentRepo.PaymentRepository
}

// Dashboard assembles today's load, upcoming confirmed bookings, captured
// revenue, the status breakdown and the most recent bookings.
func (s *DefaultAdminService) Dashboard(ctx context.Context) (*Dashboard, error) {
	today := time.Now().UTC().Format("2006-01-02")

	todayCount, err := s.Bookings.CountForDate(ctx, today)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.Bookings.CountUpcomingConfirmed(ctx, today)
	if err != nil {
		return nil, err
	}
	revenue, err := s.Payments.TotalCapturedRevenue(ctx)
	if err != nil {
		return nil, err
	}
	statusCounts, err := s.Bookings.CountsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.Bookings.Recent(ctx, 10)
	if err != nil {
		return nil, err
	}

	byStatus := make(map[string]int64, len(statusCounts))
	for _, sc := range statusCounts {
		byStatus[sc.Status] = sc.Count
	}

	rows := make([]RecentBooking, 0, len(recent))
	for _, b := range recent {
		rows = append(rows, RecentBooking{
			ID:           b.ID,
			UserName:     b.UserName,
			ServiceTitle: b.ServiceTitle,
			Date:         b.Date,
			TimeSlot:     b.TimeSlot,
			Status:       b.Status,
			PriceINR:     b.PriceINR,
		})
	}

	return &Dashboard{
		TodayBookings:    todayCount,
		UpcomingBookings: upcoming,
		TotalRevenue:     revenue,
		BookingsByStatus: byStatus,
		RecentBookings:   rows,
	}, nil
}

// Stats assembles totals, per-service revenue and the 30-day booking and
// revenue series with missing days zero-filled.
func (s *DefaultAdminService) Stats(ctx context.Context) (*Stats, error) {
	totalUsers, err := s.Users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalBookings, err := s.Bookings.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalPayments, err := s.Payments.CountCaptured(ctx)
	if err != nil {
		return nil, err
	}

	byService, err := s.Bookings.RevenueByService(ctx, []string{models.BookingConfirmed, models.BookingCompleted})
	if err != nil {
		return nil, err
	}

	today := time.Now().UTC()
	windowStart := today.AddDate(0, 0, -(reportDays - 1))

	dailyCounts, err := s.Bookings.DailyCounts(ctx,
		windowStart.Format("2006-01-02"), today.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	countByDate := make(map[string]int64, len(dailyCounts))
	for _, dc := range dailyCounts {
		countByDate[dc.Date] = dc.Count
	}

	dailyRevenue, err := s.Payments.DailyCapturedRevenue(ctx, windowStart)
	if err != nil {
		return nil, err
	}
	revenueByDate := make(map[string]int64, len(dailyRevenue))
	for _, dr := range dailyRevenue {
		revenueByDate[dr.Date] = dr.Revenue
	}

	bookingSeries := make([]DailyPoint, 0, reportDays)
	revenueSeries := make([]DailyPoint, 0, reportDays)
	for i := 0; i < reportDays; i++ {
		d := windowStart.AddDate(0, 0, i).Format("2006-01-02")
		bookingSeries = append(bookingSeries, DailyPoint{Date: d, Count: countByDate[d]})
		revenueSeries = append(revenueSeries, DailyPoint{Date: d, Revenue: revenueByDate[d]})
	}

	return &Stats{
		TotalUsers:       totalUsers,
		TotalBookings:    totalBookings,
		TotalPayments:    totalPayments,
		RevenueByService: byService,
		DailyBookings:    bookingSeries,
		DailyRevenue:     revenueSeries,
	}, nil
}
