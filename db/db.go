package db

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultDBName = "logicheck"

// extractDBName parses the database name from the URI, defaulting to "logicheck"
func extractDBName(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return defaultDBName
	}
	if u.Path != "" && u.Path != "/" {
		return u.Path[1:] // Trim leading '/'
	}
	return defaultDBName
}

// ConnectMongoDB establishes a connection to MongoDB using the provided URI
// and returns the database named in its path.
func ConnectMongoDB(ctx context.Context, uri string) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Verify connection with a ping
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client, client.Database(extractDBName(uri)), nil
}
