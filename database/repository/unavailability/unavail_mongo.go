package unavailRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vedicjivan/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUnavailabilityRepo implements UnavailabilityRepository using MongoDB.
type MongoUnavailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoUnavailabilityRepo creates a new instance of UnavailabilityRepository using MongoDB.
func NewMongoUnavailabilityRepo(db *mongo.Database) UnavailabilityRepository {
	repo := &MongoUnavailabilityRepo{coll: db.Collection("unavailability")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create unavailability indexes: %v\n", err)
	}
	return repo
}

// newContext derives a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoUnavailabilityRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "is_holiday", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new unavailability block.
func (r *MongoUnavailabilityRepo) Create(ctx context.Context, block *models.UnavailabilityBlock) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, block); err != nil {
		return fmt.Errorf("failed to create unavailability block: %w", err)
	}
	return nil
}

// Delete removes an unavailability block by its ID.
func (r *MongoUnavailabilityRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete unavailability block %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// HasHoliday reports whether a full-day holiday record exists for date.
func (r *MongoUnavailabilityRepo) HasHoliday(ctx context.Context, date string) (bool, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	err := r.coll.FindOne(ctx, bson.M{"date": date, "is_holiday": true}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check holiday for %s: %w", date, err)
	}
	return true, nil
}

// BlackoutsForDate returns the non-holiday blocks for date.
func (r *MongoUnavailabilityRepo) BlackoutsForDate(ctx context.Context, date string) ([]models.UnavailabilityBlock, error) {
	return r.find(ctx, bson.M{"date": date, "is_holiday": false}, bson.D{{Key: "start_time", Value: 1}})
}

// ListForDate returns every block for date, holidays included.
func (r *MongoUnavailabilityRepo) ListForDate(ctx context.Context, date string) ([]models.UnavailabilityBlock, error) {
	return r.find(ctx, bson.M{"date": date}, bson.D{{Key: "start_time", Value: 1}})
}

// ListRange returns every block with date in [startDate, endDate].
func (r *MongoUnavailabilityRepo) ListRange(ctx context.Context, startDate, endDate string) ([]models.UnavailabilityBlock, error) {
	filter := bson.M{"date": bson.M{"$gte": startDate, "$lte": endDate}}
	return r.find(ctx, filter, bson.D{{Key: "date", Value: 1}})
}

// HolidaysInRange returns the holiday dates within [startDate, endDate].
func (r *MongoUnavailabilityRepo) HolidaysInRange(ctx context.Context, startDate, endDate string) ([]string, error) {
	filter := bson.M{"date": bson.M{"$gte": startDate, "$lte": endDate}, "is_holiday": true}
	blocks, err := r.find(ctx, filter, bson.D{{Key: "date", Value: 1}})
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(blocks))
	for _, b := range blocks {
		dates = append(dates, b.Date)
	}
	return dates, nil
}

func (r *MongoUnavailabilityRepo) find(ctx context.Context, filter bson.M, sort bson.D) ([]models.UnavailabilityBlock, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unavailability blocks: %w", err)
	}
	defer cursor.Close(ctx)

	var blocks []models.UnavailabilityBlock
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("failed to decode unavailability blocks: %w", err)
	}
	return blocks, nil
}
