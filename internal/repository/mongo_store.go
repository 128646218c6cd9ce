package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore is the MongoDB implementation of DocumentStore.
type MongoStore struct {
	db *mongo.Database
}

// NewMongoStore creates a client for uri and binds it to database name.
func NewMongoStore(ctx context.Context, uri, name string, timeout time.Duration) (*MongoStore, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	return NewMongoStoreFromDatabase(client.Database(name)), nil
}

// NewMongoStoreFromDatabase wraps an existing database handle.
func NewMongoStoreFromDatabase(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

// Ensure MongoStore implements DocumentStore at compile time.
var _ DocumentStore = (*MongoStore)(nil)

func (s *MongoStore) Name() string { return s.db.Name() }

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}

func (s *MongoStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.D{})
}

func (s *MongoStore) Find(ctx context.Context, collection string, limit int64) ([]Document, error) {
	cur, err := s.db.Collection(collection).Find(ctx, bson.D{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	var raw []bson.M
	if err := cur.All(ctx, &raw); err != nil {
		return nil, err
	}
	docs := make([]Document, 0, len(raw))
	for _, m := range raw {
		delete(m, "_id")
		docs = append(docs, Document(m))
	}
	return docs, nil
}

func (s *MongoStore) Insert(ctx context.Context, collection string, doc Document) error {
	_, err := s.db.Collection(collection).InsertOne(ctx, bson.M(doc))
	return err
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.db.Client().Disconnect(ctx)
}
