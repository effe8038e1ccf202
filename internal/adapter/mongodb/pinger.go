package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Pinger adapts a client for health checks.
type Pinger struct {
	client *mongo.Client
}

// NewPinger creates a Pinger.
func NewPinger(client *mongo.Client) *Pinger {
	return &Pinger{client: client}
}

// Ping checks that the primary is reachable.
func (p *Pinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, readpref.Primary())
}
