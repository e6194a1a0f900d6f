package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// CountsByStatus groups bookings by status.
func (r *MongoBookingRepo) CountsByStatus(ctx context.Context) ([]StatusCount, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$group": bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate booking statuses: %w", err)
	}
	defer cursor.Close(ctx)

	var counts []StatusCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("failed to decode status counts: %w", err)
	}
	return counts, nil
}

// RevenueByService sums booking prices per service title for the given
// statuses, highest revenue first.
func (r *MongoBookingRepo) RevenueByService(ctx context.Context, statuses []string) ([]ServiceRevenue, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{"status": bson.M{"$in": statuses}}},
		{"$group": bson.M{
			"_id":     "$service_title",
			"count":   bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$price_inr"},
		}},
		{"$sort": bson.M{"revenue": -1}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue by service: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []ServiceRevenue
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode service revenue: %w", err)
	}
	return rows, nil
}

// DailyCounts groups bookings by date within [startDate, endDate], ascending.
func (r *MongoBookingRepo) DailyCounts(ctx context.Context, startDate, endDate string) ([]DateCount, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{"date": bson.M{"$gte": startDate, "$lte": endDate}}},
		{"$group": bson.M{"_id": "$date", "count": bson.M{"$sum": 1}}},
		{"$sort": bson.M{"_id": 1}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate daily bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []DateCount
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode daily counts: %w", err)
	}
	return rows, nil
}
