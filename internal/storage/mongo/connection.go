package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/dtroode/taskboard-server/internal/model"
)

var _ model.Backend = (*Backend)(nil)

// Backend holds a client connected to one MongoDB database.
type Backend struct {
	client   *mongo.Client
	database *mongo.Database
}

// Connect dials uri and verifies the deployment is reachable.
func Connect(ctx context.Context, uri, database string) (*Backend, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &Backend{
		client:   client,
		database: client.Database(database),
	}, nil
}

func (b *Backend) Collection(name string) model.Collection {
	return NewCollection(b.database.Collection(name))
}

func (b *Backend) Ping(ctx context.Context) error {
	return b.client.Ping(ctx, readpref.Primary())
}

func (b *Backend) Close(ctx context.Context) error {
	if err := b.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from mongo: %w", err)
	}
	return nil
}
