package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const accountsCollection = "accounts"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Repository persists wallet accounts in MongoDB.
type Repository struct {
	client   *mongo.Client
	accounts *mongo.Collection
	metrics  Metrics
}

func NewRepository(ctx context.Context, uri, database string, metrics Metrics) (*Repository, error) {
	if uri == "" {
		return nil, errors.New("mongodb uri is required")
	}
	if database == "" {
		return nil, errors.New("mongodb database is required")
	}
	if metrics == nil {
		return nil, errors.New("repository metrics is required")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &Repository{
		client:   client,
		accounts: client.Database(database).Collection(accountsCollection),
		metrics:  metrics,
	}, nil
}

// Ping reports whether the server is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}

func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
