package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the repositories rely on. Creating an
// index that already exists with the same keys is a no-op.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(SongsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "artist_genre", Value: 1}},
		Options: options.Index().SetName("artist_genre_1"),
	})
	if err != nil {
		return fmt.Errorf("create songs.artist_genre index: %w", err)
	}
	return nil
}
