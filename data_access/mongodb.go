package data_access

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	connectAttempts = 5
	connectBackoff  = time.Second
	connectTimeout  = 10 * time.Second
)

type MongoDB struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoDB connects with bounded exponential-backoff retry. Exhausting the
// attempt budget is fatal for the caller; no traffic may be accepted before
// the connection is up.
func NewMongoDB(ctx context.Context, connectionString, dbName string, logger zerolog.Logger) (*MongoDB, error) {
	var lastErr error
	backoff := connectBackoff

	for attempt := 1; attempt <= connectAttempts; attempt++ {
		client, err := connect(ctx, connectionString)
		if err == nil {
			return &MongoDB{client: client, db: client.Database(dbName)}, nil
		}
		lastErr = err

		logger.Warn().
			Err(err).
			Int("attempt", attempt).
			Int("max_attempts", connectAttempts).
			Msg("mongodb connection failed")

		if attempt < connectAttempts {
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			backoff *= 2
		}
	}

	return nil, fmt.Errorf("connecting to mongodb after %d attempts: %w", connectAttempts, lastErr)
}

func connect(ctx context.Context, connectionString string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connectionString))
	if err != nil {
		return nil, err
	}

	if err = client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return client, nil
}

// EnsureIndexes creates the uniqueness constraints the application relies on:
// unique username and email on users, and one review per (user, movie).
func (m *MongoDB) EnsureIndexes(ctx context.Context) error {
	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := m.Collection("users").Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("creating user indexes: %w", err)
	}

	reviewIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "movie_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := m.Collection("reviews").Indexes().CreateOne(ctx, reviewIndex); err != nil {
		return fmt.Errorf("creating review index: %w", err)
	}

	return nil
}

func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
