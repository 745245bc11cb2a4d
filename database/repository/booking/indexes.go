package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// optionsFindNewestFirst sorts guest listings by creation time descending.
func optionsFindNewestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
}

// EnsureIndexes creates the necessary indexes on the bookings collection.
func (repo *MongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "booking_number", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_booking_number"),
		},
		{
			Keys:    bson.D{{Key: "guest_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("guest_created_idx"),
		},
		// Conflict-check query pattern: item + date range + active status.
		{
			Keys: bson.D{
				{Key: "snapshot.item_id", Value: 1},
				{Key: "status", Value: 1},
				{Key: "start_date", Value: 1},
			},
			Options: options.Index().SetName("item_status_start_idx"),
		},
		// Expiration sweep query pattern.
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "expires_at", Value: 1}},
			Options: options.Index().SetName("status_expires_idx"),
		},
	}

	if _, err := repo.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
