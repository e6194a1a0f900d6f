package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"vedicjivan/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// List returns bookings matching the filter, newest first.
func (r *MongoBookingRepo) List(ctx context.Context, filter ListFilter) ([]models.Booking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.UserEmail != "" {
		query["user_email"] = filter.UserEmail
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Date != "" {
		query["date"] = filter.Date
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// ActiveForDate returns the bookings that currently block their interval on
// date: confirmed ones, plus pending ones created at or after pendingCutoff.
func (r *MongoBookingRepo) ActiveForDate(ctx context.Context, date string, pendingCutoff time.Time) ([]models.Booking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{
		"date": date,
		"$or": bson.A{
			bson.M{"status": models.BookingConfirmed},
			bson.M{"status": models.BookingPending, "created_at": bson.M{"$gte": pendingCutoff}},
		},
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active bookings for %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode active bookings: %w", err)
	}
	return bookings, nil
}

// CountForDate returns the number of bookings on a date, any status.
func (r *MongoBookingRepo) CountForDate(ctx context.Context, date string) (int64, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"date": date})
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings for %s: %w", date, err)
	}
	return n, nil
}

// CountUpcomingConfirmed returns the number of confirmed bookings on or after fromDate.
func (r *MongoBookingRepo) CountUpcomingConfirmed(ctx context.Context, fromDate string) (int64, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{"date": bson.M{"$gte": fromDate}, "status": models.BookingConfirmed}
	n, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to count upcoming bookings: %w", err)
	}
	return n, nil
}

// Count returns the total number of bookings.
func (r *MongoBookingRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return n, nil
}

// Recent returns the most recently created bookings.
func (r *MongoBookingRepo) Recent(ctx context.Context, limit int64) ([]models.Booking, error) {
	return r.List(ctx, ListFilter{Limit: limit})
}
