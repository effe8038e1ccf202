// Package kebab implements the kebab menu repository using MongoDB.
package kebab

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

type document struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Ingredients  []string           `bson:"ingredients"`
	Price        float64            `bson:"price"`
	IsVegetarian bool               `bson:"isVegetarian"`
}

// Repo provides kebab persistence backed by MongoDB.
type Repo struct {
	coll *mongo.Collection
}

// New creates a new kebab repository over the kebabs collection of db.
func New(db *mongo.Database) *Repo {
	return &Repo{coll: db.Collection(mongodb.KebabsCollection)}
}

// List returns all kebabs in insertion order.
// Returns an empty slice (not nil) when the menu is empty.
func (r *Repo) List(ctx context.Context) ([]domain.Kebab, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, mongodb.MapError(err, "list kebabs")
	}

	var docs []document
	if err := cur.All(ctx, &docs); err != nil {
		return nil, mongodb.MapError(err, "list kebabs")
	}

	kebabs := make([]domain.Kebab, len(docs))
	for i, d := range docs {
		kebabs[i] = toDomain(d)
	}
	return kebabs, nil
}

// Create stores k and returns it with ID and CreatedAt populated.
func (r *Repo) Create(ctx context.Context, k domain.Kebab) (*domain.Kebab, error) {
	doc := document{
		ID:           primitive.NewObjectID(),
		Name:         k.Name,
		Ingredients:  k.Ingredients,
		Price:        k.Price,
		IsVegetarian: k.IsVegetarian,
	}
	if doc.Ingredients == nil {
		doc.Ingredients = []string{}
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, mongodb.MapError(err, fmt.Sprintf("kebab %q", k.Name))
	}

	created := toDomain(doc)
	return &created, nil
}

// toDomain derives CreatedAt from the ObjectID timestamp.
func toDomain(d document) domain.Kebab {
	return domain.Kebab{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Ingredients:  d.Ingredients,
		Price:        d.Price,
		IsVegetarian: d.IsVegetarian,
		CreatedAt:    d.ID.Timestamp().UTC().Truncate(time.Second),
	}
}
