package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"housepriced/pkg/types"
)

const mongoServerSelectionTimeout = 5 * time.Second

// Mongo writes one document per prediction into a collection.
type Mongo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// OpenMongo creates a client for uri. The driver connects lazily, so an
// unreachable server surfaces on the first Record or Ping, not here.
func OpenMongo(ctx context.Context, uri, database, collection string) (*Mongo, error) {
	if strings.TrimSpace(uri) == "" {
		uri = DefaultMongoURI
	}
	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(mongoServerSelectionTimeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	return &Mongo{client: client, coll: client.Database(database).Collection(collection)}, nil
}

func (m *Mongo) Record(ctx context.Context, rec types.PredictionRecord) error {
	if _, err := m.coll.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("mongo insert: %w", err)
	}
	return nil
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *Mongo) Backend() string { return BackendMongo }
