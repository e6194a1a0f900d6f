package bookingRepo

import (
	"context"
	"time"

	"vedicjivan/models"
)

// ListFilter narrows booking list queries. Empty fields are ignored.
type ListFilter struct {
	UserEmail string
	Status    string
	Date      string
	Limit     int64
}

// StatusCount is one bucket of the bookings-by-status aggregation.
type StatusCount struct {
	Status string `bson:"_id"`
	Count  int64  `bson:"count"`
}

// ServiceRevenue is one bucket of the revenue-by-service aggregation.
type ServiceRevenue struct {
	Service  string `bson:"_id" json:"service"`
	Bookings int64  `bson:"count" json:"bookings"`
	Revenue  int64  `bson:"revenue" json:"revenue"`
}

// DateCount is one bucket of the bookings-per-day aggregation.
type DateCount struct {
	Date  string `bson:"_id"`
	Count int64  `bson:"count"`
}

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	SetPaymentID(ctx context.Context, id, paymentID string) error
	List(ctx context.Context, filter ListFilter) ([]models.Booking, error)

	// ActiveForDate returns bookings that currently occupy their interval on
	// date: all confirmed ones, plus pending ones created at or after
	// pendingCutoff.
	ActiveForDate(ctx context.Context, date string, pendingCutoff time.Time) ([]models.Booking, error)

	CountForDate(ctx context.Context, date string) (int64, error)
	CountUpcomingConfirmed(ctx context.Context, fromDate string) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountsByStatus(ctx context.Context) ([]StatusCount, error)
	Recent(ctx context.Context, limit int64) ([]models.Booking, error)
	RevenueByService(ctx context.Context, statuses []string) ([]ServiceRevenue, error)
	DailyCounts(ctx context.Context, startDate, endDate string) ([]DateCount, error)
}
