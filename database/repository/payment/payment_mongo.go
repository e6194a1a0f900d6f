package paymentRepo

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

// MongoPaymentRepo implements PaymentRepository using MongoDB.
type MongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo creates a new instance of PaymentRepository using MongoDB.
func NewMongoPaymentRepo(db *mongo.Database) PaymentRepository {
	repo := &MongoPaymentRepo{coll: db.Collection("payments")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create payment indexes: %v\n", err)
	}
	return repo
}

// newContext derives a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoPaymentRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "razorpay_order_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new payment document.
func (r *MongoPaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	payment.CreatedAt = time.Now().UTC()

	if _, err := r.coll.InsertOne(ctx, payment); err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// GetByOrderID retrieves a payment by gateway order id. Returns nil when absent.
func (r *MongoPaymentRepo) GetByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var payment models.Payment
	err := r.coll.FindOne(ctx, bson.M{"razorpay_order_id": orderID}).Decode(&payment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch payment for order %s: %w", orderID, err)
	}
	return &payment, nil
}

// MarkCaptured flips the payment for orderID to captured, recording the
// gateway payment id and, when present, the verified signature.
func (r *MongoPaymentRepo) MarkCaptured(ctx context.Context, orderID, paymentID, signature string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{
		"razorpay_payment_id": paymentID,
		"status":              models.PaymentCaptured,
	}
	if signature != "" {
		set["razorpay_signature"] = signature
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"razorpay_order_id": orderID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to capture payment for order %s: %w", orderID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("payment for order %s not found", orderID)
	}
	return nil
}

// MarkRefundedByPaymentID flips the payment carrying paymentID to refunded.
func (r *MongoPaymentRepo) MarkRefundedByPaymentID(ctx context.Context, paymentID string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"razorpay_payment_id": paymentID}
	update := bson.M{"$set": bson.M{"status": models.PaymentRefunded}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to refund payment %s: %w", paymentID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("payment %s not found", paymentID)
	}
	return nil
}

// List returns the most recent payments.
func (r *MongoPaymentRepo) List(ctx context.Context, limit int64) ([]models.Payment, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if limit <= 0 {
		limit = 100
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	return payments, nil
}

// CountCaptured returns the number of captured payments.
func (r *MongoPaymentRepo) CountCaptured(ctx context.Context) (int64, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"status": models.PaymentCaptured})
	if err != nil {
		return 0, fmt.Errorf("failed to count captured payments: %w", err)
	}
	return n, nil
}

// TotalCapturedRevenue sums the amounts of all captured payments.
func (r *MongoPaymentRepo) TotalCapturedRevenue(ctx context.Context) (int64, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{"status": models.PaymentCaptured}},
		{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$amount_inr"}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("failed to decode revenue: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

// DailyCapturedRevenue groups captured payment amounts by creation day
// since the given time, ascending.
func (r *MongoPaymentRepo) DailyCapturedRevenue(ctx context.Context, since time.Time) ([]DailyRevenue, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{
			"status":     models.PaymentCaptured,
			"created_at": bson.M{"$gte": since},
		}},
		{"$group": bson.M{
			"_id":     bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$created_at"}},
			"revenue": bson.M{"$sum": "$amount_inr"},
		}},
		{"$sort": bson.M{"_id": 1}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate daily revenue: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []DailyRevenue
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode daily revenue: %w", err)
	}
	return rows, nil
}
