package repository

import "context"

// Document is one record of a collection, as decoded from the store.
type Document map[string]any

// DocumentStore is the thin read/write surface the API needs from the
// database. Implementations do not retry.
type DocumentStore interface {
	// Name is the database (MongoDB) or schema (PostgreSQL) the store reads.
	Name() string
	Ping(ctx context.Context) error
	ListCollectionNames(ctx context.Context) ([]string, error)
	// Find returns up to limit documents of collection, without the storage
	// identifier.
	Find(ctx context.Context, collection string, limit int64) ([]Document, error)
	Insert(ctx context.Context, collection string, doc Document) error
	Close(ctx context.Context) error
}
