package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgPool is the subset of *pgxpool.Pool used by PgStore.
type PgPool interface {
	Ping(ctx context.Context) error
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Close()
}

// PgStore keeps documents in PostgreSQL. Every collection is a table of the
// schema with a single jsonb column named doc. Tables are provisioned out of
// band.
type PgStore struct {
	pool   PgPool
	schema string
}

// NewPgStore stores documents in the tables of schema.
func NewPgStore(pool PgPool, schema string) *PgStore {
	return &PgStore{pool: pool, schema: schema}
}

// Ensure PgStore implements DocumentStore at compile time.
var _ DocumentStore = (*PgStore)(nil)

func (s *PgStore) Name() string { return s.schema }

func (s *PgStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PgStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT table_name FROM information_schema.tables
		 WHERE table_schema = $1
		 ORDER BY table_name`,
		s.schema,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *PgStore) Find(ctx context.Context, collection string, limit int64) ([]Document, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT doc FROM `+s.table(collection)+` LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := []Document{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var doc Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decode %s document: %w", collection, err)
		}
		delete(doc, "_id")
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (s *PgStore) Insert(ctx context.Context, collection string, doc Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", collection, err)
	}
	_, err = s.pool.Exec(ctx, `INSERT INTO `+s.table(collection)+` (doc) VALUES ($1)`, raw)
	return err
}

func (s *PgStore) Close(_ context.Context) error {
	s.pool.Close()
	return nil
}

func (s *PgStore) table(collection string) string {
	return pgx.Identifier{s.schema, collection}.Sanitize()
}
