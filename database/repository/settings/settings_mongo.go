package settingsRepo

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

const businessHoursID = "business_hours"

// MongoSettingsRepo implements SettingsRepository using MongoDB.
type MongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo creates a new instance of SettingsRepository using MongoDB.
func NewMongoSettingsRepo(db *mongo.Database) SettingsRepository {
	return &MongoSettingsRepo{coll: db.Collection("settings")}
}

// newContext derives a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// GetBusinessHours returns the stored schedule, or nil when none exists.
func (r *MongoSettingsRepo) GetBusinessHours(ctx context.Context) (*models.BusinessHours, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var doc struct {
		ID          string            `bson:"_id"`
		Timezone    string            `bson:"timezone"`
		WeeklyHours []models.DayHours `bson:"weekly_hours"`
	}
	err := r.coll.FindOne(ctx, bson.M{"_id": businessHoursID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch business hours: %w", err)
	}
	return &models.BusinessHours{Timezone: doc.Timezone, WeeklyHours: doc.WeeklyHours}, nil
}

// ReplaceBusinessHours upserts the schedule wholesale.
func (r *MongoSettingsRepo) ReplaceBusinessHours(ctx context.Context, hours models.BusinessHours) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	doc := bson.M{
		"_id":          businessHoursID,
		"timezone":     hours.Timezone,
		"weekly_hours": hours.WeeklyHours,
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": businessHoursID}, doc, opts); err != nil {
		return fmt.Errorf("failed to replace business hours: %w", err)
	}
	return nil
}
