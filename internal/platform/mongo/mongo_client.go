// Package mongo provides the MongoDB client bootstrap.
package mongo

import (
	"context"
	"log/slog"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// NewMongoClient はMONGODB_URIで指定されたMongoDBへ接続し、疎通確認を行います。
func NewMongoClient() (*mongo.Client, error) {
	uri := os.Getenv("MONGODB_URI")

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		slog.Error("MongoDB connection failed", "error", err)
		return nil, err
	}

	// 接続確認
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		slog.Error("MongoDB ping failed", "error", err)
		return nil, err
	}

	slog.Info("MongoDB connection successful")
	return client, nil
}
