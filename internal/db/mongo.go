package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

// Collection names used by the application.
const (
	UsersCollection = "users"
	TasksCollection = "tasks"
)

// Mongo wraps the driver client and the application database handle so the
// connection lifecycle is explicit: connect at startup, inject the handle,
// disconnect on shutdown.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials MongoDB, verifies the connection with a ping and returns a
// handle bound to the named database.
func Connect(ctx context.Context, uri, database string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &Mongo{client: client, db: client.Database(database)}, nil
}

// Users returns the users collection.
func (m *Mongo) Users() *mongo.Collection {
	return m.db.Collection(UsersCollection)
}

// Tasks returns the tasks collection.
func (m *Mongo) Tasks() *mongo.Collection {
	return m.db.Collection(TasksCollection)
}

// EnsureIndexes creates the indexes the application relies on. The unique
// index on users.email makes duplicate registration a single insert-time
// conflict instead of a check-then-insert race.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.Users().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create users.email index: %w", err)
	}

	_, err = m.Tasks().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create tasks.user_id index: %w", err)
	}
	return nil
}

// Disconnect closes the underlying client.
func (m *Mongo) Disconnect(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
