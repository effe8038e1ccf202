// Package mongodb wires the MongoDB driver: client construction, index
// setup, error mapping and health pings. Collection repositories live in
// sub-packages.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/lenasun/kebab-api/internal/config"
)

// Collection names.
const (
	SongsCollection  = "songs"
	KebabsCollection = "kebabs"
)

// NewClient creates a MongoDB client configured from DatabaseConfig.
// It applies pool settings, connects, pings the primary for fail-fast
// validation, and returns the ready client.
func NewClient(ctx context.Context, cfg config.DatabaseConfig) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetMaxConnIdleTime(cfg.MaxConnIdle)

	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("parse database URI: %w", err)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return client, nil
}
