package bootstrap

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"eventhub-backend/internal/repository"
)

// EnsureEventIndexes backs the organizer, public listing and ticket lookups.
func EnsureEventIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(repository.EventsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "organizer_id", Value: 1}, {Key: "start_date", Value: 1}},
			Options: options.Index().SetName("organizer_start"),
		},
		{
			Keys: bson.D{
				{Key: "status", Value: 1},
				{Key: "visibility", Value: 1},
				{Key: "start_date", Value: 1},
			},
			Options: options.Index().SetName("status_visibility_start"),
		},
		{
			Keys:    bson.D{{Key: "type", Value: 1}},
			Options: options.Index().SetName("type"),
		},
	})
	if err != nil {
		return fmt.Errorf("event indexes: %w", err)
	}

	_, err = db.Collection(repository.TicketsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("user_created"),
		},
		{
			Keys:    bson.D{{Key: "event_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("event_created"),
		},
	})
	if err != nil {
		return fmt.Errorf("ticket indexes: %w", err)
	}
	return nil
}
