package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"eventhub-backend/internal/logger"
)

// ConnectMongo dials uri and pings the primary before returning.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	opts := options.Client().ApplyURI(uri)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		Disconnect(client, 5*time.Second)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	fmt.Println("✅ Connected to MongoDB")
	return client, nil
}

// Disconnect closes client within timeout. Failures are logged since there
// is nothing left for the caller to do with them.
func Disconnect(client *mongo.Client, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	err := client.Disconnect(ctx)
	if err != nil {
		logger.Log.Error("mongo disconnect", "err", err)
	}
	return err
}
