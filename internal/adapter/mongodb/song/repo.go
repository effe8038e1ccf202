// Package song implements the song repository using MongoDB.
package song

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lenasun/kebab-api/internal/adapter/mongodb"
	"github.com/lenasun/kebab-api/internal/domain"
)

// document is the stored shape of a song.
type document struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	TrackName       string             `bson:"track_name"`
	ArtistName      string             `bson:"artist_name"`
	TrackDurationMS *float64           `bson:"track_duration_ms,omitempty"`
	TrackID         string             `bson:"track_id,omitempty"`
	Embed           string             `bson:"embed"`
	ArtistGenre     string             `bson:"artist_genre"`
	CreatedAt       time.Time          `bson:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"`
}

// Repo provides song persistence backed by MongoDB.
type Repo struct {
	coll *mongo.Collection
	now  func() time.Time
}

// New creates a new song repository over the songs collection of db.
func New(db *mongo.Database) *Repo {
	return &Repo{
		coll: db.Collection(mongodb.SongsCollection),
		now:  time.Now,
	}
}

// Count returns the number of stored songs.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, mongodb.MapError(err, "count songs")
	}
	return n, nil
}

// InsertMany validates and stores songs in one ordered write. Any invalid
// song rejects the whole batch before anything is written.
func (r *Repo) InsertMany(ctx context.Context, songs []domain.Song) (int, error) {
	if len(songs) == 0 {
		return 0, nil
	}

	now := r.now().UTC().Truncate(time.Millisecond)
	docs := make([]any, len(songs))
	for i, s := range songs {
		if err := s.Validate(); err != nil {
			return 0, fmt.Errorf("song %d (%q): %w", i, s.TrackName, err)
		}
		docs[i] = toDocument(s, now)
	}

	res, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	if err != nil {
		inserted := 0
		if res != nil {
			inserted = len(res.InsertedIDs)
		}
		return inserted, mongodb.MapError(err, "insert songs")
	}

	return len(res.InsertedIDs), nil
}

// DistinctGenres returns every stored genre except the sentinel, unordered.
func (r *Repo) DistinctGenres(ctx context.Context) ([]string, error) {
	filter := bson.D{{Key: "artist_genre", Value: bson.D{{Key: "$ne", Value: domain.GenreNone}}}}

	values, err := r.coll.Distinct(ctx, "artist_genre", filter)
	if err != nil {
		return nil, mongodb.MapError(err, "distinct genres")
	}

	genres := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			genres = append(genres, s)
		}
	}
	return genres, nil
}

// RandomByGenre returns one uniformly sampled song with the exact genre.
// Returns domain.ErrNotFound if no song has that genre.
func (r *Repo) RandomByGenre(ctx context.Context, genre string) (*domain.Song, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "artist_genre", Value: genre}}}},
		{{Key: "$sample", Value: bson.D{{Key: "size", Value: 1}}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, mongodb.MapError(err, "sample song")
	}
	defer cur.Close(ctx)

	if !cur.Next(ctx) {
		if err := cur.Err(); err != nil {
			return nil, mongodb.MapError(err, "sample song")
		}
		return nil, mongodb.MapError(mongo.ErrNoDocuments, "song with genre "+genre)
	}

	var doc document
	if err := cur.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode song: %w", err)
	}

	s := toDomain(doc)
	return &s, nil
}

func toDocument(s domain.Song, now time.Time) document {
	return document{
		TrackName:       s.TrackName,
		ArtistName:      s.ArtistName,
		TrackDurationMS: s.TrackDurationMS,
		TrackID:         s.TrackID,
		Embed:           s.Embed,
		ArtistGenre:     s.ArtistGenre,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func toDomain(d document) domain.Song {
	return domain.Song{
		ID:              d.ID.Hex(),
		TrackName:       d.TrackName,
		ArtistName:      d.ArtistName,
		TrackDurationMS: d.TrackDurationMS,
		TrackID:         d.TrackID,
		Embed:           d.Embed,
		ArtistGenre:     d.ArtistGenre,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}
